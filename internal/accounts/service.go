package accounts

import (
	"context"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/dmitrijs2005/recordkeeper/internal/auth"
	"github.com/dmitrijs2005/recordkeeper/internal/common"
	"github.com/dmitrijs2005/recordkeeper/internal/config"
	"github.com/dmitrijs2005/recordkeeper/internal/logging"
)

// Service owns the account collection. It is not safe for concurrent use
// without the internal mutex, which every exported method takes.
type Service struct {
	mu       sync.Mutex
	repo     Repository
	log      logging.Logger
	secret   []byte
	validity time.Duration
	accounts []Account
}

func NewService(repo Repository, cfg *config.Config, log logging.Logger) *Service {
	return &Service{
		repo:     repo,
		log:      log.With("component", "accounts"),
		secret:   []byte(cfg.SecretKey),
		validity: cfg.SessionValidity,
	}
}

// Load reads the account collection from the repository. Call once at
// startup, before Bootstrap.
func (s *Service) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts = s.repo.LoadAll(ctx)
	s.log.Debug(ctx, "accounts loaded", "count", len(s.accounts))
}

// Bootstrap creates the default admin account when the store is empty.
// Running it against a populated store is a no-op.
func (s *Service) Bootstrap(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.accounts) > 0 {
		return nil
	}

	admin := Account{
		ID:                 1,
		Username:           DefaultAdminUsername,
		PasswordHash:       HashSecret(DefaultAdminPassword),
		Role:               auth.RoleAdmin,
		Email:              DefaultAdminEmail,
		SecurityQuestion:   SecurityQuestions[0],
		SecurityAnswerHash: HashAnswer(DefaultAdminAnswer),
		CreatedAt:          time.Now(),
	}
	s.accounts = append(s.accounts, admin)

	if err := s.persist(ctx); err != nil {
		return err
	}
	s.log.Info(ctx, "bootstrapped default admin account", "username", admin.Username)
	return nil
}

// Authenticate checks the username and password against the stored records
// and returns a fresh session on success. Username comparison is exact and
// case-sensitive.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*auth.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	hash := HashSecret(password)
	for _, a := range s.accounts {
		if a.Username == username && a.PasswordHash == hash {
			token, err := auth.GenerateToken(a.Username, a.Role, s.secret, s.validity)
			if err != nil {
				s.log.Error(ctx, "signing session token", "error", err)
				return nil, common.ErrorInternal
			}
			return auth.NewSession(a.Username, a.Role, token), nil
		}
	}
	return nil, common.ErrorUnauthorized
}

// RegisterParams carries the fields of a registration request. A zero Role
// defaults to the unprivileged role.
type RegisterParams struct {
	Username         string
	Password         string
	Email            string
	SecurityQuestion string
	SecurityAnswer   string
	Role             auth.Role
}

// Register appends a new account after checking username and email
// uniqueness. On a persistence failure the account stays in memory and the
// error tells the caller the change may not survive a restart.
func (s *Service) Register(ctx context.Context, p RegisterParams) (*Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.accounts {
		if a.Username == p.Username {
			return nil, common.ErrorUsernameTaken
		}
	}
	for _, a := range s.accounts {
		if a.Email == p.Email {
			return nil, common.ErrorEmailTaken
		}
	}
	if !ValidSecurityQuestion(p.SecurityQuestion) {
		return nil, common.ErrorUnknownQuestion
	}

	role := p.Role
	if role == "" {
		role = auth.RoleUser
	}

	acc := Account{
		ID:                 nextID(s.accounts),
		Username:           p.Username,
		PasswordHash:       HashSecret(p.Password),
		Role:               auth.ParseRole(string(role)),
		Email:              p.Email,
		SecurityQuestion:   p.SecurityQuestion,
		SecurityAnswerHash: HashAnswer(p.SecurityAnswer),
		CreatedAt:          time.Now(),
	}
	s.accounts = append(s.accounts, acc)

	if err := s.persist(ctx); err != nil {
		return &acc, err
	}
	s.log.Info(ctx, "account registered", "username", acc.Username, "role", acc.Role)
	return &acc, nil
}

// ChangePassword updates the password of the session's account. The current
// password is verified before the new password's length, so the caller sees
// "current password incorrect" even when the new password is also invalid.
func (s *Service) ChangePassword(ctx context.Context, sess *auth.Session, currentPassword, newPassword string) error {
	if sess == nil {
		return common.ErrorNotAuthenticated
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(sess.Username)
	if idx < 0 {
		return common.ErrorNotAuthenticated
	}

	if s.accounts[idx].PasswordHash != HashSecret(currentPassword) {
		return common.ErrorPasswordIncorrect
	}
	if utf8.RuneCountInString(newPassword) < MinPasswordLength {
		return common.ErrorPasswordTooShort
	}

	now := time.Now()
	s.accounts[idx].PasswordHash = HashSecret(newPassword)
	s.accounts[idx].PasswordChangedAt = &now

	return s.persist(ctx)
}

// ResetPassword is the security-question recovery flow. On a matching
// username and answer it stores a freshly generated password and returns the
// plaintext once. A mismatch on either field fails generically so the caller
// cannot tell which one was wrong.
func (s *Service) ResetPassword(ctx context.Context, username, securityAnswer string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	answerHash := HashAnswer(securityAnswer)
	for i := range s.accounts {
		a := &s.accounts[i]
		if a.Username != username || a.SecurityAnswerHash != answerHash {
			continue
		}

		password, err := common.MakeRandomPassword(common.GeneratedPasswordLength)
		if err != nil {
			s.log.Error(ctx, "generating password", "error", err)
			return "", common.ErrorInternal
		}

		now := time.Now()
		a.PasswordHash = HashSecret(password)
		a.PasswordResetAt = &now

		if err := s.persist(ctx); err != nil {
			return "", err
		}
		s.log.Info(ctx, "password reset", "username", username)
		return password, nil
	}
	return "", common.ErrorNotFound
}

// GetByUsername returns a copy of the named account, for flows that need to
// show the security question before asking for the answer.
func (s *Service) GetByUsername(username string) (Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if idx := s.indexOf(username); idx >= 0 {
		return s.accounts[idx], nil
	}
	return Account{}, common.ErrorNotFound
}

// List returns a copy of the account collection for rendering.
func (s *Service) List() []Account {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Account, len(s.accounts))
	copy(out, s.accounts)
	return out
}

func (s *Service) indexOf(username string) int {
	for i := range s.accounts {
		if s.accounts[i].Username == username {
			return i
		}
	}
	return -1
}

func (s *Service) persist(ctx context.Context) error {
	if err := s.repo.SaveAll(ctx, s.accounts); err != nil {
		s.log.Error(ctx, "saving accounts", "error", err)
		return err
	}
	return nil
}

func nextID(records []Account) int {
	max := 0
	for _, r := range records {
		if r.ID > max {
			max = r.ID
		}
	}
	return max + 1
}
