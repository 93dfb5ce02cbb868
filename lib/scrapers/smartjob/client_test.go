package smartjob

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"smartjob-scraper/lib/telemetry"

	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, baseUrl string) *Client {
	client, err := NewClient(context.Background(), ClientOptions{
		BaseUrl:  baseUrl,
		DelayMin: time.Millisecond,
		DelayMax: time.Millisecond * 2,
	})
	require.NoError(t, err)
	return client
}

func TestFetchDocumentRetriesUntilSuccess(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:smartjob")
	defer cleanup()

	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if requests.Add(1) <= 2 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, `<html><body><h1>salam</h1></body></html>`)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	backoffs := 0
	client.sleep = func(time.Duration) { backoffs++ }

	doc, err := client.FetchDocument(context.Background(), client.ListingUrl(1))
	require.NoError(t, err)
	require.Equal(t, "salam", doc.Find("h1").Text())
	require.EqualValues(t, 3, requests.Load())
	require.Equal(t, 2, backoffs)
}

func TestFetchDocumentGivesUpAfterBudget(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:smartjob")
	defer cleanup()

	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	backoffs := 0
	client.sleep = func(time.Duration) { backoffs++ }

	_, err := client.FetchDocument(context.Background(), client.ListingUrl(1))
	require.Error(t, err)
	require.ErrorContains(t, err, "after 3 attempts")
	require.EqualValues(t, 3, requests.Load())
	// no backoff after the final attempt
	require.Equal(t, 2, backoffs)
}

func TestListingUrl(t *testing.T) {
	client := newTestClient(t, "https://smartjob.az/")
	require.Equal(t, "https://smartjob.az/resumes?page=7", client.ListingUrl(7))
}

func TestPaceStaysInRange(t *testing.T) {
	client, err := NewClient(context.Background(), ClientOptions{
		BaseUrl:  "https://smartjob.az",
		DelayMin: time.Millisecond * 10,
		DelayMax: time.Millisecond * 20,
	})
	require.NoError(t, err)

	var slept time.Duration
	client.sleep = func(d time.Duration) { slept = d }

	for i := 0; i < 25; i++ {
		client.Pace()
		require.GreaterOrEqual(t, slept, time.Millisecond*10)
		require.LessOrEqual(t, slept, time.Millisecond*20)
	}
}

func TestBackoffDoublesPacingRange(t *testing.T) {
	client, err := NewClient(context.Background(), ClientOptions{
		BaseUrl:  "https://smartjob.az",
		DelayMin: time.Millisecond * 10,
		DelayMax: time.Millisecond * 20,
	})
	require.NoError(t, err)

	for i := 0; i < 25; i++ {
		d := client.backoffDelay()
		require.GreaterOrEqual(t, d, time.Millisecond*20)
		require.LessOrEqual(t, d, time.Millisecond*40)
	}
}

func TestRandDurationDegenerateRange(t *testing.T) {
	require.Equal(t, time.Second, randDuration(time.Second, time.Second))
	require.Equal(t, time.Second, randDuration(time.Second, time.Millisecond))
}
