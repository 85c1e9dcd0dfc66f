package stub

import (
	"errors"
	"sort"
	"strconv"
	"sync"

	"github.com/KasumiMercury/primind-medicine-reminder/internal/infra/medicineapi"
)

var ErrTaskExists = errors.New("task already exists")

// Storage keeps medicines per bearer token and the tasks of the stub queue.
type Storage struct {
	mu        sync.RWMutex
	nextID    int
	medicines map[string][]medicineapi.MedicinePayload // token -> medicines
	tasks     map[string]Task                          // task name -> task
}

func NewStorage() *Storage {
	return &Storage{
		medicines: make(map[string][]medicineapi.MedicinePayload),
		tasks:     make(map[string]Task),
	}
}

func (s *Storage) ResetAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID = 0
	s.medicines = make(map[string][]medicineapi.MedicinePayload)
	s.tasks = make(map[string]Task)
}

// AddMedicine assigns the next numeric id and stores the medicine under token.
func (s *Storage) AddMedicine(token string, m medicineapi.MedicinePayload) medicineapi.MedicinePayload {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	m.SetID(strconv.Itoa(s.nextID))

	s.medicines[token] = append(s.medicines[token], m)
	return m
}

func (s *Storage) Medicines(token string) []medicineapi.MedicinePayload {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]medicineapi.MedicinePayload, len(s.medicines[token]))
	copy(out, s.medicines[token])
	return out
}

func (s *Storage) PutTask(task Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.tasks[task.Name]; exists {
		return ErrTaskExists
	}
	s.tasks[task.Name] = task
	return nil
}

// DeleteTask reports whether the task existed.
func (s *Storage) DeleteTask(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.tasks[name]; !exists {
		return false
	}
	delete(s.tasks, name)
	return true
}

// Tasks returns the stored tasks ordered by schedule time, then name.
func (s *Storage) Tasks() []Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].ScheduleTime.Equal(out[j].ScheduleTime) {
			return out[i].ScheduleTime.Before(out[j].ScheduleTime)
		}
		return out[i].Name < out[j].Name
	})
	return out
}
