package service

import (
	"context"
	"errors"
	"time"

	"phone_input_backend/internal/countries"
	"phone_input_backend/internal/events"
	"phone_input_backend/internal/sessions/repository"
	"phone_input_backend/internal/sessions/transport"
	"phone_input_backend/internal/telinput"
	"phone_input_backend/platform/apperr"
	"phone_input_backend/platform/config"
	"phone_input_backend/platform/logger"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	sessionTokenType   = "session"
	sessionNotFound    = "session not found"
	invalidCountryCode = "invalid country code"
	storeUnavailable   = "session store unavailable"
	sessionConflict    = "session was modified concurrently"
)

type Service struct {
	store    repository.Store
	eventBus events.Bus
	cfg      config.SessionConfig
	base     []countries.Country
	log      *logger.Logger
	now      func() time.Time
}

// New creates the session service. base replaces the built-in country table
// when non-nil; log may be nil.
func New(store repository.Store, eventBus events.Bus, cfg config.SessionConfig, base []countries.Country, log *logger.Logger) *Service {
	return &Service{store: store, eventBus: eventBus, cfg: cfg, base: base, log: log, now: time.Now}
}

func (s *Service) Create(ctx context.Context, inputCfg telinput.Config) (transport.CreateSessionResponse, error) {
	inputCfg.Base = s.base
	in, err := telinput.New(inputCfg)
	if err != nil {
		return transport.CreateSessionResponse{}, countryError(err)
	}

	stored := inputCfg
	stored.Base = nil

	now := s.now().UTC()
	sess := repository.Session{
		ID:        uuid.New(),
		Config:    stored,
		State:     in.State(),
		CreatedAt: now,
		UpdatedAt: now,
		ExpiresAt: now.Add(s.cfg.GetSessionTTL()),
	}
	if err := s.store.Save(ctx, &sess); err != nil {
		return transport.CreateSessionResponse{}, s.storeError(ctx, "create", err)
	}

	token, err := s.signJWT(sess.ID, sess.ExpiresAt)
	if err != nil {
		return transport.CreateSessionResponse{}, apperr.Wrap(apperr.KindInternal, "failed to issue session token", err)
	}

	s.publish(ctx, events.SessionCreated{
		BaseEvent: events.NewBaseEvent(),
		SessionID: sess.ID,
		Country:   in.Country(),
	})

	return transport.CreateSessionResponse{
		ID:        sess.ID.String(),
		Token:     token,
		ExpiresAt: sess.ExpiresAt,
		State:     view(sess, in),
	}, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (transport.SessionView, error) {
	sess, in, err := s.load(ctx, id)
	if err != nil {
		return transport.SessionView{}, err
	}
	return view(sess, in), nil
}

func (s *Service) Countries(ctx context.Context, id uuid.UUID) ([]countries.Country, error) {
	_, in, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return in.Countries(), nil
}

func (s *Service) SetValue(ctx context.Context, id uuid.UUID, value string) (transport.SessionView, error) {
	sess, in, err := s.load(ctx, id)
	if err != nil {
		return transport.SessionView{}, err
	}

	in.SetValue(value)
	return s.save(ctx, sess, in)
}

func (s *Service) SetCountry(ctx context.Context, id uuid.UUID, code string) (transport.SessionView, error) {
	sess, in, err := s.load(ctx, id)
	if err != nil {
		return transport.SessionView{}, err
	}

	previous := preferredCode(in)
	if err := in.SetCountry(code); err != nil {
		return transport.SessionView{}, countryError(err)
	}

	v, err := s.save(ctx, sess, in)
	if err != nil {
		return transport.SessionView{}, err
	}

	s.publish(ctx, events.SessionCountryChanged{
		BaseEvent: events.NewBaseEvent(),
		SessionID: id,
		Previous:  previous,
		Country:   v.Preferred,
	})
	return v, nil
}

func (s *Service) ClearCountry(ctx context.Context, id uuid.UUID) (transport.SessionView, error) {
	sess, in, err := s.load(ctx, id)
	if err != nil {
		return transport.SessionView{}, err
	}

	previous := preferredCode(in)
	in.ClearCountry()

	v, err := s.save(ctx, sess, in)
	if err != nil {
		return transport.SessionView{}, err
	}

	s.publish(ctx, events.SessionCountryChanged{
		BaseEvent: events.NewBaseEvent(),
		SessionID: id,
		Previous:  previous,
		Country:   v.Preferred,
	})
	return v, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return s.storeError(ctx, "delete", err)
	}

	s.publish(ctx, events.SessionDeleted{
		BaseEvent: events.NewBaseEvent(),
		SessionID: id,
	})
	return nil
}

// Ping reports whether the session store is reachable.
func (s *Service) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

func (s *Service) load(ctx context.Context, id uuid.UUID) (repository.Session, *telinput.Input, error) {
	sess, err := s.store.Get(ctx, id)
	if err != nil {
		return repository.Session{}, nil, s.storeError(ctx, "get", err)
	}

	cfg := sess.Config
	cfg.Base = s.base
	return sess, telinput.Restore(cfg, sess.State), nil
}

func (s *Service) save(ctx context.Context, sess repository.Session, in *telinput.Input) (transport.SessionView, error) {
	sess.State = in.State()
	sess.UpdatedAt = s.now().UTC()
	if err := s.store.Save(ctx, &sess); err != nil {
		return transport.SessionView{}, s.storeError(ctx, "save", err)
	}
	return view(sess, in), nil
}

func (s *Service) publish(ctx context.Context, event events.Event) {
	if s.eventBus != nil {
		s.eventBus.Publish(ctx, event)
	}
}

func (s *Service) signJWT(sessionID uuid.UUID, expiresAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub":  sessionID.String(),
		"type": sessionTokenType,
		"exp":  expiresAt.Unix(),
		"iat":  s.now().Unix(),
	}

	tokenObj := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tokenObj.SignedString([]byte(s.cfg.GetSessionSecret()))
}

func view(sess repository.Session, in *telinput.Input) transport.SessionView {
	v := transport.SessionView{
		ID:          sess.ID.String(),
		Value:       in.Value(),
		RawValue:    in.RawValue(),
		Digits:      in.Digits(),
		Country:     in.Country(),
		CountryData: in.CountryData(),
		ExpiresAt:   sess.ExpiresAt,
	}
	if c := in.Detected(); c != nil {
		v.Detected = c.Code
	}
	v.Preferred = preferredCode(in)
	return v
}

func preferredCode(in *telinput.Input) string {
	if c := in.Preferred(); c != nil {
		return c.Code
	}
	return ""
}

func countryError(err error) error {
	if errors.Is(err, telinput.ErrInvalidCountryCode) {
		return apperr.Wrap(apperr.KindValidation, invalidCountryCode, err)
	}
	return err
}

func (s *Service) storeError(ctx context.Context, op string, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.NotFound(sessionNotFound).WithOp(op)
	}
	if errors.Is(err, repository.ErrConflict) {
		return apperr.Wrap(apperr.KindConflict, sessionConflict, err).WithOp(op)
	}
	if s.log != nil {
		s.log.WithContext(ctx).StoreError(op, err)
	}
	return apperr.Wrap(apperr.KindInternal, storeUnavailable, err).WithOp(op)
}
