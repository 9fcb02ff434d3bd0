package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/pet-shop/internal/domain/identity"
	"github.com/BruksfildServices01/pet-shop/internal/domain/role"
)

var (
	ErrEmailTaken         = errors.New("session: email already registered")
	ErrInvalidCredentials = errors.New("session: invalid credentials")
)

const (
	fieldEmail        = "email"
	fieldPasswordHash = "password_hash"
	fieldRole         = "role"
	fieldIsActive     = "is_active"
	fieldFullName     = "full_name"
	fieldCreatedAt    = "created_at"
	fieldLastSignInAt = "last_sign_in_at"
)

func userKey(id string) string     { return "idp:user:" + id }
func emailKey(email string) string { return "idp:email:" + email }

type Options struct {
	Secret          string
	TTL             time.Duration
	SuperAdminEmail string
}

// Provider is the identity provider: accounts, passwords and session claims
// live in Redis hashes, sessions are HS256 tokens.
type Provider struct {
	rdb             *redis.Client
	secret          []byte
	ttl             time.Duration
	superAdminEmail string
	now             func() time.Time
}

func NewProvider(rdb *redis.Client, opts Options) *Provider {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Provider{
		rdb:             rdb,
		secret:          []byte(opts.Secret),
		ttl:             ttl,
		superAdminEmail: normalizeEmail(opts.SuperAdminEmail),
		now:             time.Now,
	}
}

// --------------------------------------------------
// Accounts
// --------------------------------------------------

func (p *Provider) SignUp(ctx context.Context, email, password, fullName string) (*identity.SessionUser, error) {
	email = normalizeEmail(email)

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	id := uuid.NewString()

	claimed, err := p.rdb.SetNX(ctx, emailKey(email), id, 0).Result()
	if err != nil {
		return nil, fmt.Errorf("claim email: %w", err)
	}
	if !claimed {
		return nil, ErrEmailTaken
	}

	initialRole := role.Customer
	if p.superAdminEmail != "" && email == p.superAdminEmail {
		initialRole = role.SuperAdmin
	}

	fields := map[string]interface{}{
		fieldEmail:        email,
		fieldPasswordHash: string(hash),
		fieldRole:         string(initialRole),
		fieldFullName:     strings.TrimSpace(fullName),
		fieldCreatedAt:    p.now().UTC().Format(time.RFC3339),
	}
	if err := p.rdb.HSet(ctx, userKey(id), fields).Err(); err != nil {
		_ = p.rdb.Del(ctx, emailKey(email)).Err()
		return nil, fmt.Errorf("store account: %w", err)
	}

	return sessionUserFromHash(id, stringMap(fields)), nil
}

// SignIn checks the password and issues a session token.
func (p *Provider) SignIn(ctx context.Context, email, password string) (string, *identity.SessionUser, error) {
	id, err := p.rdb.Get(ctx, emailKey(normalizeEmail(email))).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil, ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, fmt.Errorf("lookup email: %w", err)
	}

	h, err := p.rdb.HGetAll(ctx, userKey(id)).Result()
	if err != nil {
		return "", nil, fmt.Errorf("load account: %w", err)
	}
	if len(h) == 0 {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(h[fieldPasswordHash]), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	now := p.now().UTC()
	if err := p.rdb.HSet(ctx, userKey(id), fieldLastSignInAt, now.Format(time.RFC3339)).Err(); err != nil {
		return "", nil, fmt.Errorf("stamp sign in: %w", err)
	}
	h[fieldLastSignInAt] = now.Format(time.RFC3339)

	token, err := IssueToken(p.secret, id, now, p.ttl)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}

	return token, sessionUserFromHash(id, h), nil
}

// --------------------------------------------------
// identity.SessionTransport
// --------------------------------------------------

func (p *Provider) GetSessionUser(ctx context.Context, token string) (*identity.SessionUser, error) {
	id, err := ParseToken(p.secret, token, p.now())
	if err != nil {
		if errors.Is(err, identity.ErrMalformedToken) {
			return nil, err
		}
		return nil, nil
	}

	h, err := p.rdb.HGetAll(ctx, userKey(id)).Result()
	if err != nil {
		return nil, fmt.Errorf("load session user: %w", err)
	}
	if len(h) == 0 {
		return nil, nil
	}

	return sessionUserFromHash(id, h), nil
}

func (p *Provider) UpdateSessionMetadata(ctx context.Context, id string, patch identity.MetadataPatch) error {
	n, err := p.rdb.Exists(ctx, userKey(id)).Result()
	if err != nil {
		return fmt.Errorf("check account: %w", err)
	}
	if n == 0 {
		return identity.ErrUserNotFound
	}

	fields := patchFields(patch)
	if len(fields) == 0 {
		return nil
	}
	return p.rdb.HSet(ctx, userKey(id), fields).Err()
}

// --------------------------------------------------
// identity.Directory
// --------------------------------------------------

func (p *Provider) FindByEmail(ctx context.Context, email string) (*identity.SessionUser, error) {
	id, err := p.rdb.Get(ctx, emailKey(normalizeEmail(email))).Result()
	if errors.Is(err, redis.Nil) {
		return nil, identity.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("lookup email: %w", err)
	}

	h, err := p.rdb.HGetAll(ctx, userKey(id)).Result()
	if err != nil {
		return nil, fmt.Errorf("load account: %w", err)
	}
	if len(h) == 0 {
		return nil, identity.ErrUserNotFound
	}
	return sessionUserFromHash(id, h), nil
}

// --------------------------------------------------
// Hash mapping
// --------------------------------------------------

func sessionUserFromHash(id string, h map[string]string) *identity.SessionUser {
	u := &identity.SessionUser{
		ID:    id,
		Email: h[fieldEmail],
		Metadata: identity.Metadata{
			Role:     h[fieldRole],
			FullName: h[fieldFullName],
		},
	}

	if raw, ok := h[fieldIsActive]; ok {
		// an unreadable flag is treated like a missing one
		if v, err := strconv.ParseBool(raw); err == nil {
			u.Metadata.IsActive = &v
		}
	}
	if raw := h[fieldLastSignInAt]; raw != "" {
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			u.LastSignInAt = &t
		}
	}
	return u
}

func patchFields(patch identity.MetadataPatch) map[string]interface{} {
	fields := map[string]interface{}{}
	if patch.Role != nil {
		fields[fieldRole] = string(*patch.Role)
	}
	if patch.IsActive != nil {
		fields[fieldIsActive] = strconv.FormatBool(*patch.IsActive)
	}
	if patch.FullName != nil {
		fields[fieldFullName] = *patch.FullName
	}
	return fields
}

func stringMap(in map[string]interface{}) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = fmt.Sprint(v)
	}
	return out
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Compile-time check
var (
	_ identity.SessionTransport = (*Provider)(nil)
	_ identity.Directory        = (*Provider)(nil)
)
