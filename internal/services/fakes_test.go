package services

import (
	"context"
	"errors"

	"github.com/gatherlyhq/gatherly-backend/internal/models"
	"github.com/google/uuid"
)

type fakeUserStore struct {
	createFn          func(context.Context, *models.User) error
	getByIDFn         func(context.Context, uuid.UUID) (*models.User, error)
	getByEmailFn      func(context.Context, string) (*models.User, error)
	replaceContactsFn func(context.Context, uuid.UUID, []string, []string) error
}

func (f *fakeUserStore) Create(ctx context.Context, user *models.User) error {
	if f.createFn != nil {
		return f.createFn(ctx, user)
	}
	return errors.New("createFn not provided")
}

func (f *fakeUserStore) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return nil, errors.New("getByIDFn not provided")
}

func (f *fakeUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.getByEmailFn != nil {
		return f.getByEmailFn(ctx, email)
	}
	return nil, errors.New("getByEmailFn not provided")
}

func (f *fakeUserStore) ReplaceContacts(ctx context.Context, userID uuid.UUID, names, numbers []string) error {
	if f.replaceContactsFn != nil {
		return f.replaceContactsFn(ctx, userID, names, numbers)
	}
	return errors.New("replaceContactsFn not provided")
}

type fakeEventStore struct {
	createFn               func(context.Context, *models.Event) error
	getByIDFn              func(context.Context, uuid.UUID) (*models.Event, error)
	listByMemberFn         func(context.Context, uuid.UUID) ([]models.Event, error)
	listPublicFn           func(context.Context) ([]models.Event, error)
	appendInvitedNumbersFn func(context.Context, uuid.UUID, []string) error
	getAttendeeFn          func(context.Context, uuid.UUID, uuid.UUID) (*models.Attendee, error)
	addAttendeeFn          func(context.Context, *models.Attendee) error
	setRSVPFn              func(context.Context, uuid.UUID, uuid.UUID, models.RSVPStatus) error
}

func (f *fakeEventStore) Create(ctx context.Context, event *models.Event) error {
	if f.createFn != nil {
		return f.createFn(ctx, event)
	}
	return errors.New("createFn not provided")
}

func (f *fakeEventStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return nil, errors.New("getByIDFn not provided")
}

func (f *fakeEventStore) ListByMember(ctx context.Context, userID uuid.UUID) ([]models.Event, error) {
	if f.listByMemberFn != nil {
		return f.listByMemberFn(ctx, userID)
	}
	return nil, errors.New("listByMemberFn not provided")
}

func (f *fakeEventStore) ListPublic(ctx context.Context) ([]models.Event, error) {
	if f.listPublicFn != nil {
		return f.listPublicFn(ctx)
	}
	return nil, errors.New("listPublicFn not provided")
}

func (f *fakeEventStore) AppendInvitedNumbers(ctx context.Context, eventID uuid.UUID, numbers []string) error {
	if f.appendInvitedNumbersFn != nil {
		return f.appendInvitedNumbersFn(ctx, eventID, numbers)
	}
	return errors.New("appendInvitedNumbersFn not provided")
}

func (f *fakeEventStore) GetAttendee(ctx context.Context, eventID, userID uuid.UUID) (*models.Attendee, error) {
	if f.getAttendeeFn != nil {
		return f.getAttendeeFn(ctx, eventID, userID)
	}
	return nil, errors.New("getAttendeeFn not provided")
}

func (f *fakeEventStore) AddAttendee(ctx context.Context, attendee *models.Attendee) error {
	if f.addAttendeeFn != nil {
		return f.addAttendeeFn(ctx, attendee)
	}
	return errors.New("addAttendeeFn not provided")
}

func (f *fakeEventStore) SetRSVP(ctx context.Context, eventID, userID uuid.UUID, status models.RSVPStatus) error {
	if f.setRSVPFn != nil {
		return f.setRSVPFn(ctx, eventID, userID, status)
	}
	return errors.New("setRSVPFn not provided")
}

// fakeSMS records sends on a channel so tests can wait for the detached
// dispatch goroutine.
type fakeSMS struct {
	sent chan string
	err  error
}

func newFakeSMS() *fakeSMS {
	return &fakeSMS{sent: make(chan string, 16)}
}

func (f *fakeSMS) Send(_ context.Context, to, body string) error {
	f.sent <- to + "|" + body
	return f.err
}
