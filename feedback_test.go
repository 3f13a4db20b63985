package main

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestFeedbackClientSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"Pathetic.","secondaryTaunt":"Try again.","socialProofLine":"Top 1% laugh at you."}`))
	}))
	defer srv.Close()

	client := newFeedbackClient(srv.URL, time.Second)
	got, err := client.Generate(context.Background(), 0.13)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if got.Message != "Pathetic." || got.SecondaryTaunt != "Try again." || got.SocialProofLine != "Top 1% laugh at you." {
		t.Errorf("unexpected result: %+v", got)
	}
}

func TestFeedbackClientServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := newFeedbackClient(srv.URL, time.Second)
	if _, err := client.Generate(context.Background(), 0.5); err == nil {
		t.Error("expected error for 500 response")
	}
}

func TestFeedbackClientMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	client := newFeedbackClient(srv.URL, time.Second)
	if _, err := client.Generate(context.Background(), 0.5); err == nil {
		t.Error("expected error for malformed body")
	}
}

func TestFeedbackClientEmptyMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"message":"  "}`))
	}))
	defer srv.Close()

	client := newFeedbackClient(srv.URL, time.Second)
	if _, err := client.Generate(context.Background(), 0.5); err == nil {
		t.Error("expected error for blank message")
	}
}

func TestFeedbackClientTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{"message":"too slow"}`))
	}))
	defer srv.Close()

	client := newFeedbackClient(srv.URL, 20*time.Millisecond)
	if _, err := client.Generate(context.Background(), 0.5); err == nil {
		t.Error("expected timeout error")
	}
}

func TestFeedbackClientDisabled(t *testing.T) {
	client := newFeedbackClient("", time.Second)
	_, err := client.Generate(context.Background(), 0.5)
	if !errors.Is(err, errFeedbackDisabled) {
		t.Errorf("err = %v, want errFeedbackDisabled", err)
	}
	client = newFeedbackClient("   ", time.Second)
	if _, err := client.Generate(context.Background(), 0.5); !errors.Is(err, errFeedbackDisabled) {
		t.Errorf("err = %v, want errFeedbackDisabled", err)
	}
}
