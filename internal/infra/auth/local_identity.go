package auth

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"

	"canteen/internal/domain/entity"
	domainerrors "canteen/internal/domain/errors"
	"canteen/internal/domain/service"
)

type localAccount struct {
	uid        string
	email      string
	hash       string
	generation int
}

// localIdentityProvider keeps accounts in process memory and issues its own ID tokens.
// Each account carries a token generation; signing out bumps it, invalidating every
// token issued before.
type localIdentityProvider struct {
	hasher         service.PasswordHasher
	tokens         service.TokenService
	emailsVerified bool

	mu      sync.RWMutex
	byEmail map[string]*localAccount
	byUID   map[string]*localAccount
}

// NewLocalIdentityProvider is the constructor for the development identity provider.
// Accounts never prove ownership of their email; emailsVerified vouches for them anyway.
func NewLocalIdentityProvider(hasher service.PasswordHasher, tokens service.TokenService, emailsVerified bool) service.IdentityProvider {
	return &localIdentityProvider{
		hasher:         hasher,
		tokens:         tokens,
		emailsVerified: emailsVerified,
		byEmail:        make(map[string]*localAccount),
		byUID:          make(map[string]*localAccount),
	}
}

func (p *localIdentityProvider) principal(uid, email string) entity.Principal {
	return entity.Principal{ID: uid, Email: email, EmailVerified: p.emailsVerified}
}

// VerifyIDToken validates a token and checks it has not been revoked.
func (p *localIdentityProvider) VerifyIDToken(_ context.Context, idToken string) (*entity.Principal, error) {
	claims, err := p.tokens.Validate(idToken)
	if err != nil {
		return nil, domainerrors.ErrUnauthenticated.WithDetails(err.Error())
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	account, ok := p.byUID[claims.Subject]
	if !ok || claims.ID != strconv.Itoa(account.generation) {
		return nil, domainerrors.ErrUnauthenticated.WithDetails("token revoked")
	}

	principal := p.principal(account.uid, account.email)

	return &principal, nil
}

// SignUp creates an account with a hashed password.
func (p *localIdentityProvider) SignUp(_ context.Context, email, password string) (*entity.Principal, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	hash, err := p.hasher.Hash(password)
	if err != nil {
		return nil, domainerrors.ErrInternalError.WithDetails(err.Error())
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if _, exists := p.byEmail[email]; exists {
		return nil, domainerrors.ErrAccountExists
	}

	account := &localAccount{uid: uuid.NewString(), email: email, hash: hash}
	p.byEmail[email] = account
	p.byUID[account.uid] = account

	principal := p.principal(account.uid, email)

	return &principal, nil
}

// SignIn checks credentials and issues an ID token for the account's current generation.
func (p *localIdentityProvider) SignIn(_ context.Context, email, password string) (*service.Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	p.mu.RLock()
	account, ok := p.byEmail[email]
	var uid, hash, generation string
	if ok {
		uid, hash, generation = account.uid, account.hash, strconv.Itoa(account.generation)
	}
	p.mu.RUnlock()

	if !ok || !p.hasher.Check(password, hash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	token, expiresAt, err := p.tokens.Issue(uid, email, generation)
	if err != nil {
		return nil, domainerrors.ErrInternalError.WithDetails(err.Error())
	}

	return &service.Session{
		IDToken:   token,
		ExpiresAt: expiresAt,
		Principal: p.principal(uid, email),
	}, nil
}

// SignOut revokes every token issued to uid so far.
func (p *localIdentityProvider) SignOut(_ context.Context, uid string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	account, ok := p.byUID[uid]
	if !ok {
		return domainerrors.ErrUnauthenticated.WithDetails("unknown account")
	}
	account.generation++

	return nil
}
