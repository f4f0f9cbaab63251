package slack_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/buildgate/buildgate/pkg/domain/model"
	"github.com/buildgate/buildgate/pkg/infra/slack"
)

func TestNotifyBuildResult(t *testing.T) {
	var payload struct {
		Text string `json:"text"`
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gt.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	notifier := slack.New(server.URL, "ap-northeast-1")
	pr := &model.PullRequest{Owner: "o", Repo: "r", Number: 42, HeadSHA: "abc1234"}
	build := &model.BuildRecord{ID: "proj:1234", Status: model.BuildSucceeded}

	gt.NoError(t, notifier.NotifyBuildResult(context.Background(), pr, build))
	gt.True(t, strings.Contains(payload.Text, "o/r #42"))
	gt.True(t, strings.Contains(payload.Text, "SUCCEEDED"))
	gt.True(t, strings.Contains(payload.Text, "proj:1234"))
}

func TestNotifyBuildResult_WebhookFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no_service", http.StatusNotFound)
	}))
	defer server.Close()

	notifier := slack.New(server.URL, "ap-northeast-1")
	pr := &model.PullRequest{Owner: "o", Repo: "r", Number: 42}
	build := &model.BuildRecord{ID: "proj:1234", Status: model.BuildFailed}

	gt.Error(t, notifier.NotifyBuildResult(context.Background(), pr, build))
}
