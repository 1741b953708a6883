package session_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/roomgate/roomgate/internal/errors"
	"github.com/roomgate/roomgate/internal/log"
	"github.com/roomgate/roomgate/session"
)

type FetcherTestSuite struct {
	suite.Suite
	ctx context.Context
}

func TestFetcherSuite(t *testing.T) {
	suite.Run(t, new(FetcherTestSuite))
}

func (s *FetcherTestSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *FetcherTestSuite) newFetcher(baseURL string) session.TokenFetcher {
	return session.NewTokenFetcher(baseURL, log.NewTest(s.T()))
}

func (s *FetcherTestSuite) TestFetch_Success() {
	var requests atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		s.Equal("/api/token", r.URL.Path)
		s.Equal("team-standup", r.URL.Query().Get("room"))
		s.Equal("alice", r.URL.Query().Get("username"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"token":     "signed-token",
			"room":      "team-standup",
			"username":  "alice",
			"serverUrl": "wss://media.example.com",
		})
	}))
	defer srv.Close()

	token, err := s.newFetcher(srv.URL).Fetch(s.ctx, "team-standup", "alice")
	s.Require().NoError(err)
	s.Equal(&session.JoinToken{
		Token:     "signed-token",
		Room:      "team-standup",
		Username:  "alice",
		ServerURL: "wss://media.example.com",
	}, token)
	s.Equal(int64(1), requests.Load())
}

func (s *FetcherTestSuite) TestFetch_HTTPErrorIsTerminal() {
	// a 4xx/5xx will not improve on its own; exactly one attempt
	var requests atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"error": "Missing required parameters: room and username",
		})
	}))
	defer srv.Close()

	token, err := s.newFetcher(srv.URL).Fetch(s.ctx, "", "")
	s.Require().ErrorIs(err, session.ErrFetchFailed)
	s.Nil(token)
	s.Contains(err.Error(), "400")
	s.Contains(err.Error(), "Missing required parameters: room and username")
	s.Equal(int64(1), requests.Load())
}

func (s *FetcherTestSuite) TestFetch_ServerErrorCarriesMessage() {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"error": "Server configuration error",
		})
	}))
	defer srv.Close()

	_, err := s.newFetcher(srv.URL).Fetch(s.ctx, "team-standup", "alice")
	s.Require().ErrorIs(err, session.ErrFetchFailed)
	s.Contains(err.Error(), "Server configuration error")
}

func (s *FetcherTestSuite) TestFetch_MissingToken() {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"room":      "team-standup",
			"username":  "alice",
			"serverUrl": "wss://media.example.com",
		})
	}))
	defer srv.Close()

	_, err := s.newFetcher(srv.URL).Fetch(s.ctx, "team-standup", "alice")
	s.Require().ErrorIs(err, session.ErrMalformedResponse)
	s.Contains(err.Error(), "no token received from server")
}

func (s *FetcherTestSuite) TestFetch_MissingServerURL() {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"token":    "signed-token",
			"room":     "team-standup",
			"username": "alice",
		})
	}))
	defer srv.Close()

	_, err := s.newFetcher(srv.URL).Fetch(s.ctx, "team-standup", "alice")
	s.Require().ErrorIs(err, session.ErrMalformedResponse)
	s.Contains(err.Error(), "no server URL received from server")
}

func (s *FetcherTestSuite) TestFetch_TransportErrorIsRetried() {
	// first connection is dropped mid-flight; the retry succeeds
	var requests atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if requests.Add(1) == 1 {
			hj, ok := w.(http.Hijacker)
			s.Require().True(ok)
			conn, _, err := hj.Hijack()
			s.Require().NoError(err)
			_ = conn.Close()
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"token":     "signed-token",
			"room":      "team-standup",
			"username":  "alice",
			"serverUrl": "wss://media.example.com",
		})
	}))
	defer srv.Close()

	token, err := s.newFetcher(srv.URL).Fetch(s.ctx, "team-standup", "alice")
	s.Require().NoError(err)
	s.Equal("signed-token", token.Token)
	s.GreaterOrEqual(requests.Load(), int64(2))
}

func (s *FetcherTestSuite) TestFetch_GivesUpWhenServerUnreachable() {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing is listening anymore

	_, err := s.newFetcher(srv.URL).Fetch(s.ctx, "team-standup", "alice")
	s.Require().ErrorIs(err, session.ErrFetchFailed)
}

func (s *FetcherTestSuite) TestFetch_ContextCancelled() {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{})
	}))
	srv.Close()

	ctx, cancel := context.WithCancel(s.ctx)
	cancel()
	_, err := s.newFetcher(srv.URL).Fetch(ctx, "team-standup", "alice")
	s.Require().Error(err)
	s.False(errors.Is(err, session.ErrMalformedResponse))
}
