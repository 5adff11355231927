package redis

import "fmt"

// dictionaryKey returns the Redis key for the sorted set of word -> count
func (s *Storage) dictionaryKey(name string) string {
	return fmt.Sprintf("%s:dictionary:%s", s.cfg.Prefix, name)
}

// namesKey returns the Redis key for the SET of saved dictionary names
func (s *Storage) namesKey() string {
	return fmt.Sprintf("%s:idx:dictionaries", s.cfg.Prefix)
}
