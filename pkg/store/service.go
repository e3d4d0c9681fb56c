package store

// Service exposes the store to the frontend
type Service struct {
	store *Store
}

// NewService binds s for the frontend
func NewService(s *Store) *Service {
	return &Service{store: s}
}

// Get returns the value under key, or nil when it is not set
func (svc *Service) Get(key string) (interface{}, error) {
	var v interface{}
	if _, err := svc.store.Get(key, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// Set stores value under key
func (svc *Service) Set(key string, value interface{}) error {
	return svc.store.Set(key, value)
}

// Remove deletes key
func (svc *Service) Remove(key string) error {
	return svc.store.Remove(key)
}

// Clear removes every key
func (svc *Service) Clear() error {
	return svc.store.Clear()
}

// Keys lists the stored keys
func (svc *Service) Keys() []string {
	return svc.store.Keys()
}
