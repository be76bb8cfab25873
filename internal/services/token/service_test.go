package token

import (
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/snakegame-go/internal/dependencies/mocks"
)

type ServiceSuite struct {
	suite.Suite
	clock   *mocks.MockClock
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))

	cfg := DefaultConfig()
	cfg.Secret = "test-secret"

	service, err := New(cfg, s.clock)
	s.Require().NoError(err)
	s.service = service
}

func (s *ServiceSuite) TestNewRequiresSecret() {
	_, err := New(Config{}, s.clock)
	s.Error(err)
}

func (s *ServiceSuite) TestNewRejectsUnsupportedAlgorithm() {
	_, err := New(Config{Secret: "test-secret", Algorithm: "RS256"}, s.clock)
	s.Error(err)
}

func (s *ServiceSuite) TestDefaultTTL() {
	s.Equal(30*time.Minute, s.service.TTL())
}

func (s *ServiceSuite) TestIssueAndVerify() {
	token, err := s.service.Issue("alice", time.Hour)
	s.Require().NoError(err)
	s.NotEmpty(token)

	subject, err := s.service.Verify(token)
	s.Require().NoError(err)
	s.Equal("alice", subject)
}

func (s *ServiceSuite) TestVerifyAcceptsUntilExpiry() {
	token, err := s.service.Issue("alice", 30*time.Minute)
	s.Require().NoError(err)

	s.clock.Advance(29 * time.Minute)
	subject, err := s.service.Verify(token)
	s.Require().NoError(err)
	s.Equal("alice", subject)
}

func (s *ServiceSuite) TestVerifyExpiredToken() {
	token, err := s.service.Issue("alice", 30*time.Minute)
	s.Require().NoError(err)

	s.clock.Advance(31 * time.Minute)
	_, err = s.service.Verify(token)
	s.ErrorIs(err, ErrExpiredToken)
}

func (s *ServiceSuite) TestVerifyWrongSecret() {
	other, err := New(Config{Secret: "other-secret"}, s.clock)
	s.Require().NoError(err)

	token, err := other.Issue("alice", time.Hour)
	s.Require().NoError(err)

	_, err = s.service.Verify(token)
	s.ErrorIs(err, ErrInvalidSignature)
}

func (s *ServiceSuite) TestVerifyMalformedToken() {
	_, err := s.service.Verify("not-a-jwt")
	s.ErrorIs(err, ErrInvalidToken)

	_, err = s.service.Verify("")
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *ServiceSuite) TestVerifyTamperedToken() {
	token, err := s.service.Issue("alice", time.Hour)
	s.Require().NoError(err)

	tampered := token[:len(token)-2] + "xx"
	_, err = s.service.Verify(tampered)
	s.Error(err)
}

func (s *ServiceSuite) TestVerifyRejectsUnsignedToken() {
	claims := jwt.RegisteredClaims{
		Subject:   "alice",
		ExpiresAt: jwt.NewNumericDate(s.clock.Now().Add(time.Hour)),
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	s.Require().NoError(err)

	_, err = s.service.Verify(unsigned)
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *ServiceSuite) TestVerifyRejectsNonHMACAlgorithm() {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	s.Require().NoError(err)

	claims := jwt.RegisteredClaims{
		Subject:   "alice",
		ExpiresAt: jwt.NewNumericDate(s.clock.Now().Add(time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	s.Require().NoError(err)

	// The verifier only accepts HMAC methods, whatever the header claims
	_, err = s.service.Verify(signed)
	s.ErrorIs(err, ErrInvalidToken)
}
