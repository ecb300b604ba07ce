package state

import "blogctl/internal/client/models"

// PostsState is the posts slice. The sequence keeps server order and never
// contains two posts with the same ID.
type PostsState struct {
	Posts  []models.Post
	Status Status
	Err    string
}

// Posts returns a snapshot of the posts slice. The returned sequence is a
// copy and safe to retain.
func (s *Store) Posts() PostsState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := s.posts
	snap.Posts = make([]models.Post, len(s.posts.Posts))
	copy(snap.Posts, s.posts.Posts)
	return snap
}

// PostsRequestStarted marks a new posts operation in flight.
func (s *Store) PostsRequestStarted() {
	s.mu.Lock()
	s.posts.Status = StatusLoading
	s.posts.Err = ""
	s.mu.Unlock()
	s.notify()
}

// PostsLoaded replaces the whole sequence with the server's result.
func (s *Store) PostsLoaded(posts []models.Post) {
	s.mu.Lock()
	s.posts.Posts = posts
	s.posts.Status = StatusSucceeded
	s.posts.Err = ""
	s.mu.Unlock()
	s.notify()
}

// PostMerged inserts the post returned by a create or update resolution.
// An existing post with the same ID is replaced in place so the sequence
// keeps its order and never holds duplicates; otherwise the post is appended.
func (s *Store) PostMerged(p models.Post) {
	s.mu.Lock()
	replaced := false
	for i := range s.posts.Posts {
		if s.posts.Posts[i].ID == p.ID {
			s.posts.Posts[i] = p
			replaced = true
			break
		}
	}
	if !replaced {
		s.posts.Posts = append(s.posts.Posts, p)
	}
	s.posts.Status = StatusSucceeded
	s.posts.Err = ""
	s.mu.Unlock()
	s.notify()
}

// PostRemoved drops the post with the given ID. A missing ID is a no-op on
// the sequence; the caller surfaces any error separately.
func (s *Store) PostRemoved(id string) {
	s.mu.Lock()
	for i := range s.posts.Posts {
		if s.posts.Posts[i].ID == id {
			s.posts.Posts = append(s.posts.Posts[:i], s.posts.Posts[i+1:]...)
			break
		}
	}
	s.posts.Status = StatusSucceeded
	s.posts.Err = ""
	s.mu.Unlock()
	s.notify()
}

// PostsFailed records a failed posts operation.
func (s *Store) PostsFailed(msg string) {
	s.mu.Lock()
	s.posts.Status = StatusFailed
	s.posts.Err = msg
	s.mu.Unlock()
	s.notify()
}

// FindPost returns the post with the given ID from the current snapshot.
func (s *Store) FindPost(id string) (*models.Post, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.posts.Posts {
		if s.posts.Posts[i].ID == id {
			p := s.posts.Posts[i]
			return &p, true
		}
	}
	return nil, false
}
