package timer

// StubTimeout stands in for timeout flavors a device cannot provide.
func StubTimeout(_ uint64) Error {
	return NotSupported
}
