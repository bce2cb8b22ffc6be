package service

import (
	"encoding/json"
	"fmt"
	"sync"

	"legaldocai-be/internal/constant"
	"legaldocai-be/internal/entity"
	"legaldocai-be/internal/pkg/logger"
	"legaldocai-be/internal/pkg/serverutils"
	"legaldocai-be/internal/repository/memory"
	"legaldocai-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// ISessionService owns the document session history and the wizard step
// state. Commit/Select/Remove are the only mutations of the history;
// each holds the store lock for its duration, so no two interleave.
type ISessionService interface {
	Commit(results []entity.PageResult, analytics entity.Analytics, file *entity.UploadedFile) *entity.DocumentSession
	Select(index int) (*entity.DocumentSession, error)
	Remove(index int) error

	Active() *entity.DocumentSession
	ActiveIndex() int
	History() []*entity.DocumentSession
	Get(index int) (*entity.DocumentSession, error)

	Step() int
	NextStep() int
	PrevStep() int
	GoToStep(key string) (int, error)
}

type sessionService struct {
	mu          sync.Mutex
	historyRepo *memory.HistoryRepository
	previewRepo *memory.PreviewRepository
	pubSub      *gochannel.GoChannel
	logger      logger.ILogger

	active *entity.DocumentSession
	step   int
}

var stepKeys = map[string]int{
	"upload":    constant.StepUpload,
	"data":      constant.StepData,
	"analytics": constant.StepAnalytics,
	"history":   constant.StepHistory,
}

func NewSessionService(
	historyRepo *memory.HistoryRepository,
	previewRepo *memory.PreviewRepository,
	pubSub *gochannel.GoChannel,
	log logger.ILogger,
) ISessionService {
	return &sessionService{
		historyRepo: historyRepo,
		previewRepo: previewRepo,
		pubSub:      pubSub,
		logger:      log,
		step:        constant.StepUpload,
	}
}

// Commit freezes an upload into a session, prepends it to history and
// marks it active. A nil file is a no-op guard against committing an
// incomplete upload event.
func (s *sessionService) Commit(results []entity.PageResult, analytics entity.Analytics, file *entity.UploadedFile) *entity.DocumentSession {
	if file == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	name := file.Name
	if name == "" {
		name = fmt.Sprintf("Document %d", s.historyRepo.Len()+1)
	}

	token := s.previewRepo.Put(file)
	previewURL := "/api/preview/v1/file/" + token

	session := entity.NewDocumentSession(name, results, analytics, token, previewURL)
	s.historyRepo.Prepend(session)
	s.active = session
	s.step = constant.StepData

	s.logger.Info("SessionService", "Session committed", map[string]interface{}{
		"name":  session.Name,
		"pages": session.Pages,
	})
	s.publish(events.NewDocumentAnalyzed(
		session.Name, session.Pages,
		len(session.Names), len(session.Emails), len(session.Phones), len(session.ClausesFound),
	))
	return session
}

// Select makes the session at index active, restoring its snapshot as
// current. A session whose preview token no longer resolves is reported
// as an error and the active session is left unchanged.
func (s *sessionService) Select(index int) (*entity.DocumentSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session := s.historyRepo.Get(index)
	if session == nil {
		return nil, serverutils.NewNotFoundError("History entry not found")
	}
	if _, ok := s.previewRepo.Get(session.PreviewToken); !ok {
		return nil, serverutils.NewApiError(409, constant.MsgMissingPreview)
	}

	s.active = session
	s.step = constant.StepData
	return session, nil
}

// Remove splices the session out of history and releases its preview
// blob. Skipping the release would leak the in-memory file for the
// process lifetime.
func (s *sessionService) Remove(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := s.historyRepo.Remove(index)
	if removed == nil {
		return serverutils.NewNotFoundError("History entry not found")
	}
	s.previewRepo.Release(removed.PreviewToken)
	if s.active != nil && s.active.Id == removed.Id {
		s.active = nil
	}

	s.logger.Info("SessionService", "Session removed", map[string]interface{}{"name": removed.Name})
	s.publish(events.NewDocumentRemoved(removed.Name, index))
	return nil
}

func (s *sessionService) Active() *entity.DocumentSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// ActiveIndex returns the active session's current history index, or -1
// when no session is active.
func (s *sessionService) ActiveIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == nil {
		return -1
	}
	for i, session := range s.historyRepo.List() {
		if session.Id == s.active.Id {
			return i
		}
	}
	return -1
}

func (s *sessionService) History() []*entity.DocumentSession {
	return s.historyRepo.List()
}

func (s *sessionService) Get(index int) (*entity.DocumentSession, error) {
	session := s.historyRepo.Get(index)
	if session == nil {
		return nil, serverutils.NewNotFoundError("History entry not found")
	}
	return session, nil
}

func (s *sessionService) Step() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.step
}

func (s *sessionService) NextStep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.step < constant.StepHistory {
		s.step++
	}
	return s.step
}

func (s *sessionService) PrevStep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.step > constant.StepUpload {
		s.step--
	}
	return s.step
}

func (s *sessionService) GoToStep(key string) (int, error) {
	step, ok := stepKeys[key]
	if !ok {
		return 0, serverutils.NewValidationError("Unknown step key")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.step = step
	return s.step, nil
}

func (s *sessionService) publish(evt events.BaseEvent) {
	if s.pubSub == nil {
		return
	}
	payload, err := json.Marshal(evt)
	if err != nil {
		s.logger.Error("SessionService", "Failed to marshal event", map[string]interface{}{"error": err.Error()})
		return
	}
	if err := s.pubSub.Publish(constant.TopicDocumentEvents, message.NewMessage(watermill.NewUUID(), payload)); err != nil {
		s.logger.Error("SessionService", "Failed to publish event", map[string]interface{}{"error": err.Error()})
	}
}
