package usecase_test

import (
	"context"
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
	"sync"

	"github.com/buildgate/buildgate/pkg/domain/model"
)

// sign computes the webhook signature header value GitHub would send
// for the given body.
func sign(secret string, body []byte) string {
	mac := hmac.New(sha1.New, []byte(secret))
	mac.Write(body)
	return "sha1=" + hex.EncodeToString(mac.Sum(nil))
}

// callLog records cross-collaborator call ordering.
type callLog struct {
	mu    sync.Mutex
	calls []string
}

func (l *callLog) add(call string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = append(l.calls, call)
}

func (l *callLog) list() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.calls...)
}

type fakeSecretStore struct {
	mu     sync.Mutex
	params map[string]string
	err    error
	calls  []string
}

func (s *fakeSecretStore) GetParameter(ctx context.Context, name string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, name)
	if s.err != nil {
		return "", s.err
	}
	return s.params[name], nil
}

func (s *fakeSecretStore) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

type statusPost struct {
	pr     *model.PullRequest
	status *model.CommitStatus
}

type fakeGitHub struct {
	mu sync.Mutex

	log *callLog

	authErr   error
	authCalls int

	pr      *model.PullRequest
	prErr   error
	prCalls []string

	statuses   []statusPost
	statusErrs []error // consumed one per CreateStatus call, nil means success
}

func (g *fakeGitHub) Authenticate(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.authCalls++
	if g.log != nil {
		g.log.add("authenticate")
	}
	return g.authErr
}

func (g *fakeGitHub) GetPullRequest(ctx context.Context, owner, repo string, number int) (*model.PullRequest, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.prCalls = append(g.prCalls, owner+"/"+repo)
	if g.log != nil {
		g.log.add("get_pull_request")
	}
	if g.prErr != nil {
		return nil, g.prErr
	}
	return g.pr, nil
}

func (g *fakeGitHub) CreateStatus(ctx context.Context, pr *model.PullRequest, status *model.CommitStatus) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.log != nil {
		g.log.add("create_status " + status.Description)
	}

	var err error
	if len(g.statusErrs) > 0 {
		err = g.statusErrs[0]
		g.statusErrs = g.statusErrs[1:]
	}
	if err != nil {
		return err
	}

	g.statuses = append(g.statuses, statusPost{pr: pr, status: status})
	return nil
}

func (g *fakeGitHub) posted() []statusPost {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]statusPost(nil), g.statuses...)
}

type fakeBuilds struct {
	mu sync.Mutex

	log *callLog

	startIn  []string // "project@sourceVersion"
	build    *model.BuildRecord
	startErr error

	polls    [][]*model.BuildRecord // successive BatchGetBuilds responses, last one repeats
	pollErr  error
	getCalls int
}

func (b *fakeBuilds) StartBuild(ctx context.Context, project, sourceVersion string) (*model.BuildRecord, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.startIn = append(b.startIn, project+"@"+sourceVersion)
	if b.log != nil {
		b.log.add("start_build")
	}
	if b.startErr != nil {
		return nil, b.startErr
	}
	return b.build, nil
}

func (b *fakeBuilds) BatchGetBuilds(ctx context.Context, ids []string) ([]*model.BuildRecord, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.getCalls++
	if b.pollErr != nil {
		return nil, b.pollErr
	}

	if len(b.polls) == 0 {
		return nil, nil
	}
	out := b.polls[0]
	if len(b.polls) > 1 {
		b.polls = b.polls[1:]
	}
	return out, nil
}

type fakeNotifier struct {
	mu     sync.Mutex
	err    error
	builds []*model.BuildRecord
	done   chan struct{}
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{done: make(chan struct{}, 8)}
}

func (n *fakeNotifier) NotifyBuildResult(ctx context.Context, pr *model.PullRequest, build *model.BuildRecord) error {
	n.mu.Lock()
	n.builds = append(n.builds, build)
	n.mu.Unlock()
	n.done <- struct{}{}
	return n.err
}

func (n *fakeNotifier) notified() []*model.BuildRecord {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]*model.BuildRecord(nil), n.builds...)
}

func openPR() *model.PullRequest {
	return &model.PullRequest{
		Owner:   "o",
		Repo:    "r",
		Number:  42,
		State:   "open",
		HeadSHA: "abc1234",
	}
}
