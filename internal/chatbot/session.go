package chatbot

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
)

// MaxMessages bounds a single session's transcript.
const MaxMessages = 200

var (
	ErrEmptyQuestion   = errors.New("question is empty")
	ErrSessionNotFound = errors.New("chat session not found")
	ErrSessionFull     = errors.New("chat session is full")
)

type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// Message is one line of a chat transcript.
type Message struct {
	ID        string    `json:"id"`
	Sender    Sender    `json:"sender"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// Session is an append-only transcript. It lives only in memory.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu       sync.Mutex
	messages []Message
	// reserved counts answer slots held by questions still being answered.
	reserved int
}

// Messages returns a copy of the transcript.
func (s *Session) Messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// addQuestion appends q only when the transcript also has room for its
// answer, and reserves that slot.
func (s *Session) addQuestion(q Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.messages)+s.reserved+2 > MaxMessages {
		return ErrSessionFull
	}
	s.messages = append(s.messages, q)
	s.reserved++
	return nil
}

// addAnswer fills a slot reserved by addQuestion.
func (s *Session) addAnswer(a Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reserved--
	s.messages = append(s.messages, a)
}

// release gives back a reserved slot whose answer was abandoned.
func (s *Session) release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reserved--
}

// DelayFunc returns how long to pause before answering.
type DelayFunc func() time.Duration

// NoDelay answers immediately.
func NoDelay() time.Duration { return 0 }

// RandomDelay picks a uniform delay in [min, max].
func RandomDelay(min, max time.Duration) DelayFunc {
	if max <= min {
		return func() time.Duration { return min }
	}
	return func() time.Duration {
		return min + time.Duration(rand.Int63n(int64(max-min)+1))
	}
}

// Reply is the bot message produced for a question.
type Reply struct {
	Message Message `json:"message"`
	Intent  Intent  `json:"intent"`
}

// Service owns the chat sessions and the pacing delay.
type Service struct {
	matcher   *Matcher
	sessions  *cache.Cache
	delay     DelayFunc
	now       func() time.Time
	firstName string
}

// NewService creates a session store whose idle sessions expire after ttl.
func NewService(matcher *Matcher, ttl time.Duration, delay DelayFunc) *Service {
	if delay == nil {
		delay = NoDelay
	}
	return &Service{
		matcher:   matcher,
		sessions:  cache.New(ttl, ttl*2),
		delay:     delay,
		now:       time.Now,
		firstName: matcher.portfolio.Personal.FirstName,
	}
}

// Start opens a session seeded with the welcome message.
func (s *Service) Start() *Session {
	now := s.now()
	sess := &Session{
		ID:        uuid.NewString(),
		CreatedAt: now,
		messages: []Message{{
			ID:        "welcome",
			Sender:    SenderBot,
			Text:      s.welcome(),
			Timestamp: now,
		}},
	}
	s.sessions.Set(sess.ID, sess, cache.DefaultExpiration)
	return sess
}

func (s *Service) welcome() string {
	if s.firstName == "" {
		return "Hi! I'm the portfolio assistant. Ask me anything!"
	}
	return "Hi! 👋 I'm " + s.firstName + "'s portfolio assistant. Ask me anything!"
}

// Get returns a live session.
func (s *Service) Get(id string) (*Session, bool) {
	v, ok := s.sessions.Get(id)
	if !ok {
		return nil, false
	}
	return v.(*Session), true
}

// Ask appends the question, waits for the pacing delay and appends the
// answer. A question is refused with ErrSessionFull unless its answer also
// fits. A cancelled context leaves only the question in the transcript.
func (s *Service) Ask(ctx context.Context, id, question string) (reply Reply, err error) {
	if strings.TrimSpace(question) == "" {
		err = ErrEmptyQuestion
		return reply, err
	}

	sess, ok := s.Get(id)
	if !ok {
		err = errors.Wrapf(ErrSessionNotFound, "session %s", id)
		return reply, err
	}

	err = sess.addQuestion(Message{
		ID:        uuid.NewString(),
		Sender:    SenderUser,
		Text:      question,
		Timestamp: s.now(),
	})
	if err != nil {
		return reply, err
	}

	if d := s.delay(); d > 0 {
		timer := time.NewTimer(d)
		select {
		case <-ctx.Done():
			timer.Stop()
			sess.release()
			err = errors.Wrap(ctx.Err(), "waiting to answer")
			return reply, err
		case <-timer.C:
		}
	}

	resp := s.matcher.Answer(question)
	reply = Reply{
		Message: Message{
			ID:        uuid.NewString(),
			Sender:    SenderBot,
			Text:      resp.Answer,
			Timestamp: s.now(),
		},
		Intent: resp.Type,
	}
	sess.addAnswer(reply.Message)

	s.sessions.Set(sess.ID, sess, cache.DefaultExpiration)
	return reply, err
}

// Count reports live sessions.
func (s *Service) Count() int {
	return s.sessions.ItemCount()
}
