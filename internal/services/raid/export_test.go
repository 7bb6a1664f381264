package raid

// LockCount reports how many session lock entries the service holds
func LockCount(svc Service) int {
	s := svc.(*service)
	s.locksMu.Lock()
	defer s.locksMu.Unlock()
	return len(s.locks)
}
