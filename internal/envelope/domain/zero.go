package domain

// Zero securely overwrites a byte slice with zeros to clear sensitive data from memory.
func Zero(b []byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
}

// Zero clears the key material held by the master key.
func (m *MasterKey) Zero() {
	if m == nil {
		return
	}
	Zero(m.Key)
}
