package getseq

// Try is only exported so tests can pin the offset.
func (s *Sampler) Try(off int64) (bool, error) { return s.try(off) }

// Words gives the words from the last try.
func (s *Sampler) Words() [][]byte { return s.words }
