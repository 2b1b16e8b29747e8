package service

// SetHashGenerator replaces the share hash source
func (s *ShareLinkService) SetHashGenerator(f func() (string, error)) {
	s.newHash = f
}
