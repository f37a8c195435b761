package jwt

import (
	"time"

	"cargo-consolidation/internal/domain/user"
	"cargo-consolidation/internal/pkg/clock"
	"cargo-consolidation/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errs.New("invalid token")
	ErrExpiredToken = errs.New("token expired")
)

// Claims carries the caller identity. The subject holds the user id.
type Claims struct {
	Role user.Role `json:"role"`
	jwt.RegisteredClaims
}

// UserID parses the subject; uuid.Nil when it is missing or malformed.
func (c *Claims) UserID() uuid.UUID {
	id, err := uuid.Parse(c.Subject)
	if err != nil {
		return uuid.Nil
	}
	return id
}

type Options struct {
	Secret string
	Issuer string
	TTL    time.Duration
	Leeway time.Duration
}

type Service struct {
	key    []byte
	opts   Options
	clock  clock.Clock
	parser *jwt.Parser
}

func NewService(opts Options, clk clock.Clock) *Service {
	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(clk.Now),
		jwt.WithLeeway(opts.Leeway),
		jwt.WithExpirationRequired(),
	}
	if opts.Issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(opts.Issuer))
	}

	return &Service{
		key:    []byte(opts.Secret),
		opts:   opts,
		clock:  clk,
		parser: jwt.NewParser(parserOpts...),
	}
}

// Issue mints service and test tokens; end-user tokens come from the identity service.
func (s *Service) Issue(userID uuid.UUID, role user.Role) (string, error) {
	now := s.clock.Now()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.opts.Issuer,
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.opts.TTL)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
	if err != nil {
		return "", errs.Wrap(err, "sign token")
	}
	return signed, nil
}

func (s *Service) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	_, err := s.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.key, nil
	})
	switch {
	case errs.Is(err, jwt.ErrTokenExpired):
		return nil, errs.Mark(err, ErrExpiredToken)
	case err != nil:
		return nil, errs.Mark(err, ErrInvalidToken)
	}
	return claims, nil
}
