// Package services – UserService
//
// This file implements the UserService, which manages the user directory
// reachable from the Users screen and from qrcodeapp://user/<id> deep
// links. It validates and normalizes display names and email addresses and
// coordinates repository operations for creating, listing (with
// pagination), and fetching users.
//
// Service-level errors (e.g., ErrUserNotFound) are returned for predictable
// cases so handlers can map them to HTTP results consistently.
package services

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"

	"gorm.io/gorm"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/khateebdev-stack/qrcode/internal/domain"
)

// UserRepo defines the repository contract required by UserService.
// Implementations are responsible for persistence of the user directory.
type UserRepo interface {
	// CreateUser inserts a new user row.
	CreateUser(ctx context.Context, db *gorm.DB, name, email string) (*domain.User, error)

	// GetUser fetches a user by ID.
	GetUser(ctx context.Context, db *gorm.DB, id string) (*domain.User, error)

	// CountUsers returns the total number of users for pagination.
	CountUsers(ctx context.Context, db *gorm.DB) (int64, error)

	// ListUsersPage returns a page of directory users.
	ListUsersPage(ctx context.Context, db *gorm.DB, offset, limit int) ([]domain.User, error)
}

// UserService provides directory-level operations. It enforces name and
// email rules before handing off to the repository.
type UserService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Repo is the user repository used by this service.
	Repo UserRepo

	// NameMaxLen caps stored display names by rune length.
	NameMaxLen int
	// NameCaser title-cases display names for consistent presentation.
	NameCaser cases.Caser
}

// NewUserService constructs a UserService with sane defaults for name
// handling.
func NewUserService(db *gorm.DB, r UserRepo) *UserService {
	return &UserService{
		DB:         db,
		Repo:       r,
		NameMaxLen: 120,
		NameCaser:  cases.Title(language.Und),
	}
}

// Create inserts a new directory user after normalizing the display name
// and validating the email address.
func (s *UserService) Create(ctx context.Context, name, email string) (*domain.User, error) {
	name = s.normalizeName(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailRE.MatchString(email) {
		return nil, ErrInvalidEmail
	}

	u, err := s.Repo.CreateUser(ctx, s.DB, name, email)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || isUniqueViolation(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return u, nil
}

// Get fetches a user by ID, translating missing rows to ErrUserNotFound.
func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	u, err := s.Repo.GetUser(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

// ListPage returns a page of users (paginated). It applies defaults for
// invalid page/pageSize and returns the total count.
func (s *UserService) ListPage(ctx context.Context, page, pageSize int) ([]domain.User, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	total, err := s.Repo.CountUsers(ctx, s.DB)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []domain.User{}, 0, nil
	}

	items, err := s.Repo.ListUsersPage(ctx, s.DB, offset, pageSize)
	return items, total, err
}

// normalizeName trims, collapses whitespace, title-cases, and clips the
// display name to the configured maximum rune length.
func (s *UserService) normalizeName(name string) string {
	name = whitespaceRE.ReplaceAllString(strings.TrimSpace(name), " ")
	if name == "" {
		return ""
	}
	name = s.NameCaser.String(name)
	if s.NameMaxLen > 0 && utf8.RuneCountInString(name) > s.NameMaxLen {
		name = string([]rune(name)[:s.NameMaxLen])
	}
	return name
}

// isUniqueViolation recognizes SQLite unique-constraint failures that GORM
// does not translate to ErrDuplicatedKey.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// whitespaceRE collapses consecutive whitespace to a single space.
var whitespaceRE = regexp.MustCompile(`\s+`)

// emailRE is a pragmatic shape check, not full RFC validation.
var emailRE = regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`)
