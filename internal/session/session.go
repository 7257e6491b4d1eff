// Package session runs one game.Engine on its own goroutine.
//
// Every mutation reaches the engine through the session inbox, so the engine
// only ever has one writer. Word fetches run on a helper goroutine and their
// result is posted back to the inbox before it touches the engine; guesses
// and snapshots keep being served while a fetch is outstanding.
package session

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/language"
)

var ErrClosed = errors.New("session closed")

type Msg interface{ isSessionMsg() }

type Guess struct {
	Letter rune
	Reply  chan GuessResult
}

type SetLanguage struct {
	Language language.Language
	Reply    chan error
}

// NextWord starts a fetch; Reset additionally zeroes the score first.
type NextWord struct {
	Reset bool
	Reply chan FetchResult
}

type GetSnapshot struct {
	Reply chan game.Snapshot
}

type Shutdown struct{}

// fetchDone carries a finished fetch back onto the session goroutine.
type fetchDone struct {
	ticket game.Ticket
	word   string
	err    error
	reply  chan FetchResult
}

func (Guess) isSessionMsg()       {}
func (SetLanguage) isSessionMsg() {}
func (NextWord) isSessionMsg()    {}
func (GetSnapshot) isSessionMsg() {}
func (Shutdown) isSessionMsg()    {}
func (fetchDone) isSessionMsg()   {}

// Outcome describes a round that the last guess concluded.
type Outcome struct {
	Round  game.Round
	Points int
}

type GuessResult struct {
	Accepted  bool
	Snapshot  game.Snapshot
	Concluded *Outcome // non-nil only for the guess that ended the round
}

type FetchResult struct {
	Err      error
	Snapshot game.Snapshot
}

// Session owns one engine.
type Session struct {
	ID string

	inbox    chan Msg
	engine   *game.Engine
	ctx      context.Context
	cancel   context.CancelFunc
	done     chan struct{}
	lastSeen atomic.Int64
}

// New starts the session goroutine. It stops on Close or when parent is cancelled.
func New(parent context.Context, id string, e *game.Engine) *Session {
	ctx, cancel := context.WithCancel(parent)
	s := &Session{
		ID:     id,
		inbox:  make(chan Msg, 16),
		engine: e,
		ctx:    ctx,
		cancel: cancel,
		done:   make(chan struct{}),
	}
	s.touch()
	go s.loop()
	return s
}

func (s *Session) loop() {
	defer close(s.done)
	for {
		select {
		case <-s.ctx.Done():
			return

		case m := <-s.inbox:
			switch msg := m.(type) {
			case Guess:
				msg.Reply <- s.guess(msg.Letter)

			case SetLanguage:
				msg.Reply <- s.engine.SetLanguage(msg.Language)

			case NextWord:
				t, err := s.engine.BeginFetch(msg.Reset)
				if err != nil {
					msg.Reply <- FetchResult{Err: err, Snapshot: s.engine.Snapshot()}
					break
				}
				go s.fetch(t, msg.Reply)

			case fetchDone:
				err := s.engine.CompleteFetch(msg.ticket, msg.word, msg.err)
				msg.reply <- FetchResult{Err: err, Snapshot: s.engine.Snapshot()}

			case GetSnapshot:
				msg.Reply <- s.engine.Snapshot()

			case Shutdown:
				s.cancel()
				return
			}
		}
	}
}

func (s *Session) guess(letter rune) GuessResult {
	wasTerminal := s.engine.State().Terminal()
	res := GuessResult{Accepted: s.engine.GuessLetter(letter)}
	if res.Accepted && !wasTerminal && s.engine.State().Terminal() {
		r := s.engine.Round()
		out := &Outcome{Round: r}
		if r.State == game.StateWon {
			out.Points = r.Length()
		}
		res.Concluded = out
	}
	res.Snapshot = s.engine.Snapshot()
	return res
}

// fetch runs off the session goroutine and only reads the ticket.
func (s *Session) fetch(t game.Ticket, reply chan FetchResult) {
	word, err := s.engine.Fetch(s.ctx, t)
	select {
	case s.inbox <- fetchDone{ticket: t, word: word, err: err, reply: reply}:
	case <-s.ctx.Done():
	}
}

func (s *Session) send(ctx context.Context, m Msg) error {
	s.touch()
	select {
	case s.inbox <- m:
		return nil
	case <-s.done:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

func await[T any](ctx context.Context, s *Session, ch <-chan T) (T, error) {
	var zero T
	select {
	case v := <-ch:
		return v, nil
	case <-s.done:
		return zero, ErrClosed
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

// Guess submits one letter.
func (s *Session) Guess(ctx context.Context, letter rune) (GuessResult, error) {
	reply := make(chan GuessResult, 1)
	if err := s.send(ctx, Guess{Letter: letter, Reply: reply}); err != nil {
		return GuessResult{}, err
	}
	return await(ctx, s, reply)
}

// SetLanguage changes the language of the next word.
func (s *Session) SetLanguage(ctx context.Context, l language.Language) error {
	reply := make(chan error, 1)
	if err := s.send(ctx, SetLanguage{Language: l, Reply: reply}); err != nil {
		return err
	}
	err, aerr := await(ctx, s, reply)
	if aerr != nil {
		return aerr
	}
	return err
}

// NextWord fetches a new word, keeping the score.
func (s *Session) NextWord(ctx context.Context) (game.Snapshot, error) {
	return s.requestWord(ctx, false)
}

// Reset zeroes the score and fetches a new word.
func (s *Session) Reset(ctx context.Context) (game.Snapshot, error) {
	return s.requestWord(ctx, true)
}

func (s *Session) requestWord(ctx context.Context, reset bool) (game.Snapshot, error) {
	reply := make(chan FetchResult, 1)
	if err := s.send(ctx, NextWord{Reset: reset, Reply: reply}); err != nil {
		return game.Snapshot{}, err
	}
	res, err := await(ctx, s, reply)
	if err != nil {
		return game.Snapshot{}, err
	}
	return res.Snapshot, res.Err
}

// Snapshot returns the current view.
func (s *Session) Snapshot(ctx context.Context) (game.Snapshot, error) {
	reply := make(chan game.Snapshot, 1)
	if err := s.send(ctx, GetSnapshot{Reply: reply}); err != nil {
		return game.Snapshot{}, err
	}
	return await(ctx, s, reply)
}

// Close stops the session goroutine and waits for it to exit.
func (s *Session) Close() {
	s.cancel()
	<-s.done
}

// Done is closed once the session goroutine has exited.
func (s *Session) Done() <-chan struct{} { return s.done }

// Idle reports how long ago the session was last used.
func (s *Session) Idle(now time.Time) time.Duration {
	return now.Sub(time.Unix(0, s.lastSeen.Load()))
}

func (s *Session) touch() { s.lastSeen.Store(time.Now().UnixNano()) }
