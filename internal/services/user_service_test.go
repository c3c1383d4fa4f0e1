package services

import (
	"context"
	"errors"
	"testing"
	"unicode/utf8"

	"gorm.io/gorm"

	"github.com/khateebdev-stack/qrcode/internal/domain"
)

// ----- Fake repo -----

type fakeUserRepo struct {
	// capture args
	createName  string
	createEmail string
	createErr   error

	getID  string
	getU   *domain.User
	getErr error

	countTotal int64
	countErr   error

	pageOffset int
	pageLimit  int
	pageItems  []domain.User
	pageErr    error
}

func (r *fakeUserRepo) CreateUser(ctx context.Context, db *gorm.DB, name, email string) (*domain.User, error) {
	r.createName, r.createEmail = name, email
	if r.createErr != nil {
		return nil, r.createErr
	}
	return &domain.User{ID: "u1", Name: name, Email: email}, nil
}

func (r *fakeUserRepo) GetUser(ctx context.Context, db *gorm.DB, id string) (*domain.User, error) {
	r.getID = id
	return r.getU, r.getErr
}

func (r *fakeUserRepo) CountUsers(ctx context.Context, db *gorm.DB) (int64, error) {
	return r.countTotal, r.countErr
}

func (r *fakeUserRepo) ListUsersPage(ctx context.Context, db *gorm.DB, offset, limit int) ([]domain.User, error) {
	r.pageOffset, r.pageLimit = offset, limit
	return r.pageItems, r.pageErr
}

// ----- Tests -----

func TestNewUserService_Defaults(t *testing.T) {
	r := &fakeUserRepo{}
	s := NewUserService(nil, r)

	if s.DB != nil { // DB can be nil in tests
		t.Fatalf("expected nil DB, got %v", s.DB)
	}
	if s.Repo != r {
		t.Fatalf("repo not set")
	}
	if s.NameMaxLen != 120 {
		t.Fatalf("NameMaxLen default = 120, got %d", s.NameMaxLen)
	}
}

func TestCreate_NormalizesNameAndEmail(t *testing.T) {
	r := &fakeUserRepo{}
	s := NewUserService(nil, r)

	u, err := s.Create(context.Background(), "  ada   lovelace  ", "  Ada@Example.COM ")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if r.createName != "Ada Lovelace" {
		t.Fatalf("repo got name %q; want %q", r.createName, "Ada Lovelace")
	}
	if r.createEmail != "ada@example.com" {
		t.Fatalf("repo got email %q; want %q", r.createEmail, "ada@example.com")
	}
	if u.ID == "" {
		t.Fatalf("missing user ID: %+v", u)
	}
}

func TestCreate_EmptyName(t *testing.T) {
	s := NewUserService(nil, &fakeUserRepo{})
	if _, err := s.Create(context.Background(), "   \t ", "a@b.com"); !errors.Is(err, ErrEmptyName) {
		t.Fatalf("expected ErrEmptyName, got %v", err)
	}
}

func TestCreate_InvalidEmail(t *testing.T) {
	s := NewUserService(nil, &fakeUserRepo{})
	for _, email := range []string{"", "not-an-email", "a@b", "a b@c.com"} {
		if _, err := s.Create(context.Background(), "Ada", email); !errors.Is(err, ErrInvalidEmail) {
			t.Errorf("Create with email %q: expected ErrInvalidEmail, got %v", email, err)
		}
	}
}

func TestCreate_DuplicateEmail(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"gorm sentinel", gorm.ErrDuplicatedKey},
		{"raw sqlite message", errors.New("UNIQUE constraint failed: users.email")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewUserService(nil, &fakeUserRepo{createErr: tt.err})
			if _, err := s.Create(context.Background(), "Ada", "a@b.com"); !errors.Is(err, ErrDuplicateEmail) {
				t.Fatalf("expected ErrDuplicateEmail, got %v", err)
			}
		})
	}
}

func TestCreate_RepoErrorPropagates(t *testing.T) {
	sentinel := errors.New("boom")
	s := NewUserService(nil, &fakeUserRepo{createErr: sentinel})
	if _, err := s.Create(context.Background(), "Ada", "a@b.com"); !errors.Is(err, sentinel) {
		t.Fatalf("expected repo error to propagate, got %v", err)
	}
}

func TestGet_NotFoundTranslated(t *testing.T) {
	s := NewUserService(nil, &fakeUserRepo{getErr: gorm.ErrRecordNotFound})
	if _, err := s.Get(context.Background(), "missing"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestGet_Success(t *testing.T) {
	want := &domain.User{ID: "u9", Name: "Ada", Email: "a@b.com"}
	r := &fakeUserRepo{getU: want}
	s := NewUserService(nil, r)

	got, err := s.Get(context.Background(), "u9")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got != want || r.getID != "u9" {
		t.Fatalf("got %+v, repo asked for %q", got, r.getID)
	}
}

func TestListPage_DefaultsAndTotalZero(t *testing.T) {
	r := &fakeUserRepo{countTotal: 0}
	s := NewUserService(nil, r)

	items, total, err := s.ListPage(context.Background(), 0, 0)
	if err != nil {
		t.Fatalf("ListPage error: %v", err)
	}
	if total != 0 || len(items) != 0 {
		t.Fatalf("expected empty results when total=0; got total=%d len=%d", total, len(items))
	}
}

func TestListPage_OffsetAndLimit(t *testing.T) {
	r := &fakeUserRepo{
		countTotal: 42,
		pageItems:  []domain.User{{ID: "u1"}, {ID: "u2"}},
	}
	s := NewUserService(nil, r)

	items, total, err := s.ListPage(context.Background(), 3, 10)
	if err != nil {
		t.Fatalf("ListPage error: %v", err)
	}
	if total != 42 || len(items) != 2 {
		t.Fatalf("total=%d len=%d", total, len(items))
	}
	if r.pageOffset != 20 || r.pageLimit != 10 {
		t.Fatalf("repo got offset=%d limit=%d; want 20/10", r.pageOffset, r.pageLimit)
	}
}

func TestListPage_CountError(t *testing.T) {
	sentinel := errors.New("count-fail")
	s := NewUserService(nil, &fakeUserRepo{countErr: sentinel})
	if _, _, err := s.ListPage(context.Background(), 1, 10); !errors.Is(err, sentinel) {
		t.Fatalf("expected count error to propagate, got %v", err)
	}
}

func TestNormalizeName_ClipsByRunesNotBytes(t *testing.T) {
	s := NewUserService(nil, &fakeUserRepo{})
	s.NameMaxLen = 5

	long := "☃☃☃☃☃☃☃" // 7 runes
	got := s.normalizeName(long)
	if utf8.RuneCountInString(got) != 5 {
		t.Fatalf("expected 5 runes, got %d (%q)", utf8.RuneCountInString(got), got)
	}
}
