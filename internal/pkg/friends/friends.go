// Package friends keeps a private, ordered list of friend names.
package friends

import (
	"fmt"
	"io"
	"os"
	"slices"
	"sync"

	"go.uber.org/zap"

	"github.com/KristenSantos/swe-5-1-closures-exemplar-Kristen-Santos/internal/shared/interfaces"
)

// Registry owns a friend list that is only reachable through its methods.
// The zero value is not usable; call New.
type Registry struct {
	mu      sync.Mutex
	friends []string

	out      io.Writer
	logger   *zap.Logger
	recorder interfaces.Recorder
}

// Option configures a Registry
type Option func(*Registry)

// WithOutput sets where confirmation messages and the friends sentence are
// written. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(r *Registry) {
		if w != nil {
			r.out = w
		}
	}
}

// WithLogger sets the logger used for debug output and sink failures
func WithLogger(l *zap.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithRecorder sets where roster operations are counted
func WithRecorder(rec interfaces.Recorder) Option {
	return func(r *Registry) {
		if rec != nil {
			r.recorder = rec
		}
	}
}

// New returns an empty registry
func New(opts ...Option) *Registry {
	r := &Registry{
		friends:  []string{},
		out:      os.Stdout,
		logger:   zap.NewNop(),
		recorder: interfaces.NopRecorder{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// AddFriend appends name and returns the new number of friends. Duplicates
// are kept.
func (r *Registry) AddFriend(name string) int {
	r.mu.Lock()
	r.friends = append(r.friends, name)
	count := len(r.friends)
	r.mu.Unlock()

	r.say(name + " successfully added!")
	r.recorder.RecordRosterOperation(interfaces.RosterFriends, interfaces.OperationAdd, interfaces.ResultOK)
	r.logger.Debug("friend added", zap.String("name", name), zap.Int("count", count))

	return count
}

// RemoveFriend removes the first friend equal to name. It returns the removed
// name and true, or "" and false when name is not in the list.
func (r *Registry) RemoveFriend(name string) (string, bool) {
	r.mu.Lock()
	index := slices.Index(r.friends, name)
	if index != -1 {
		r.friends = slices.Delete(r.friends, index, index+1)
	}
	count := len(r.friends)
	r.mu.Unlock()

	if index == -1 {
		r.say(name + " not found.")
		r.recorder.RecordRosterOperation(interfaces.RosterFriends, interfaces.OperationRemove, interfaces.ResultNotFound)
		r.logger.Debug("friend not found", zap.String("name", name))
		return "", false
	}

	r.say(name + " successfully removed.")
	r.recorder.RecordRosterOperation(interfaces.RosterFriends, interfaces.OperationRemove, interfaces.ResultOK)
	r.logger.Debug("friend removed", zap.String("name", name), zap.Int("count", count))
	return name, true
}

// Friends returns a copy of the friend list in insertion order
func (r *Registry) Friends() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Clone(r.friends)
}

// DisplayFriends writes the sentence produced by Format for the current list
func (r *Registry) DisplayFriends() {
	r.say(Format(r.Friends()))
}

func (r *Registry) say(msg string) {
	if _, err := fmt.Fprintln(r.out, msg); err != nil {
		r.logger.Warn("failed to write message", zap.String("message", msg), zap.Error(err))
	}
}
