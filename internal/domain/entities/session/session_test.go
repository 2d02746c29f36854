package session

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSession(t *testing.T) {
	s := New("", "")
	assert.True(t, s.Identity().IsZero())

	s.Set("a@b.co", "secret")
	assert.Equal(t, Identity{Email: "a@b.co", Password: "secret"}, s.Identity())
	assert.False(t, s.Identity().IsZero())

	s.SetPassword("new-secret")
	assert.Equal(t, Identity{Email: "a@b.co", Password: "new-secret"}, s.Identity())
}

func TestSessionConcurrentSwitch(t *testing.T) {
	s := New("one@b.co", "one")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.Set("two@b.co", "two")
		}()
		go func() {
			defer wg.Done()
			id := s.Identity()
			// A pair is never torn.
			if id.Email == "one@b.co" {
				assert.Equal(t, "one", id.Password)
			} else {
				assert.Equal(t, "two", id.Password)
			}
		}()
	}
	wg.Wait()
}
