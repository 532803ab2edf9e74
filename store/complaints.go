package store

import (
	"errors"
	"sort"
	"strconv"
	"sync"
	"time"

	"civicmap-be/models"
)

var (
	ErrUnauthenticated  = errors.New("no active identity")
	ErrNotFound         = errors.New("complaint not found")
	ErrEmptyDescription = errors.New("description must not be empty")
)

// Draft is the caller-supplied part of a new complaint. ID, timestamp,
// status and reporter are assigned by the store.
type Draft struct {
	Description string
	Location    models.UserLocation
	ImageURL    *string
}

// Stats is the per-status breakdown of a complaint collection.
type Stats struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	InProgress int `json:"inProgress"`
	Resolved   int `json:"resolved"`
}

// ComplaintStore owns the in-memory complaint collection for the life of
// the process. All reads return value copies, so a snapshot taken before
// a mutation is never affected by it.
type ComplaintStore struct {
	mu         sync.RWMutex
	complaints []models.Complaint
}

// NewComplaintStore creates a store pre-populated with seed complaints,
// newest first.
func NewComplaintStore(seed ...models.Complaint) *ComplaintStore {
	s := &ComplaintStore{}
	s.complaints = append(s.complaints, seed...)
	return s
}

// Create validates the draft, assigns a fresh id, the current timestamp
// and Pending status, and prepends the complaint to the collection.
func (s *ComplaintStore) Create(draft Draft, author *models.Reporter) (models.Complaint, error) {
	if author == nil {
		return models.Complaint{}, ErrUnauthenticated
	}
	if draft.Description == "" {
		return models.Complaint{}, ErrEmptyDescription
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	complaint := models.Complaint{
		ID:          s.freshID(),
		Description: draft.Description,
		Timestamp:   time.Now(),
		Status:      models.Pending,
		Location:    draft.Location,
		Reporter:    *author,
		ImageURL:    draft.ImageURL,
	}
	s.complaints = append([]models.Complaint{complaint}, s.complaints...)
	return complaint, nil
}

// UpdateStatus replaces the status of the complaint with the given id.
// Every other field is preserved unchanged.
func (s *ComplaintStore) UpdateStatus(id string, status models.ComplaintStatus) (models.Complaint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, c := range s.complaints {
		if c.ID == id {
			c.Status = status
			s.complaints[i] = c
			return c, nil
		}
	}
	return models.Complaint{}, ErrNotFound
}

// Get returns the complaint with the given id, if present.
func (s *ComplaintStore) Get(id string) (models.Complaint, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.complaints {
		if c.ID == id {
			return c, true
		}
	}
	return models.Complaint{}, false
}

// List returns a snapshot of the collection in insertion order.
func (s *ComplaintStore) List() []models.Complaint {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Complaint, len(s.complaints))
	copy(out, s.complaints)
	return out
}

// freshID returns an id unique within the collection. Caller holds the
// write lock.
func (s *ComplaintStore) freshID() string {
	nano := time.Now().UnixNano()
	for {
		id := strconv.FormatInt(nano, 10)
		taken := false
		for _, c := range s.complaints {
			if c.ID == id {
				taken = true
				break
			}
		}
		if !taken {
			return id
		}
		nano++
	}
}

// Aggregate counts complaints by status. Total always equals the sum of
// the three buckets since the status enum is closed.
func Aggregate(complaints []models.Complaint) Stats {
	stats := Stats{Total: len(complaints)}
	for _, c := range complaints {
		switch c.Status {
		case models.Pending:
			stats.Pending++
		case models.InProgress:
			stats.InProgress++
		case models.Resolved:
			stats.Resolved++
		}
	}
	return stats
}

// Recent returns the n complaints with the latest timestamps, descending,
// ties keeping their original relative order.
func Recent(complaints []models.Complaint, n int) []models.Complaint {
	sorted := make([]models.Complaint, len(complaints))
	copy(sorted, complaints)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.After(sorted[j].Timestamp)
	})
	if n < 0 {
		n = 0
	}
	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}
