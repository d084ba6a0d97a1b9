// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package engine

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/matt-FFFFFF/rush/internal/commandinpath"
	"github.com/matt-FFFFFF/rush/internal/notify"
)

var errFakeStart = errors.New("fake start failure")

// fakeOutcome describes how a fake process behaves for a given executable.
type fakeOutcome struct {
	exitCode int
	startErr error
	waitErr  error
}

type fakeLauncher struct {
	outcomes map[string]fakeOutcome
	launched []string // argv[0] of every launch, in order
	waited   []string
	released []string
	nextPid  int
}

func newFakeLauncher(outcomes map[string]fakeOutcome) *fakeLauncher {
	return &fakeLauncher{outcomes: outcomes, nextPid: 1000}
}

func (l *fakeLauncher) Launch(_ context.Context, _ string, argv []string) (Process, error) {
	name := argv[0]
	l.launched = append(l.launched, name)

	outcome := l.outcomes[name]
	if outcome.startErr != nil {
		return nil, errors.Join(ErrCouldNotStartProcess, outcome.startErr)
	}

	l.nextPid++

	return &fakeProcess{launcher: l, name: name, pid: l.nextPid, outcome: outcome}, nil
}

type fakeProcess struct {
	launcher *fakeLauncher
	name     string
	pid      int
	outcome  fakeOutcome
}

func (p *fakeProcess) Pid() int {
	return p.pid
}

func (p *fakeProcess) Wait() (int, error) {
	p.launcher.waited = append(p.launcher.waited, p.name)
	return p.outcome.exitCode, p.outcome.waitErr
}

func (p *fakeProcess) Release() error {
	p.launcher.released = append(p.launcher.released, p.name)
	return nil
}

// lookPathExcept resolves every name except the missing ones.
func lookPathExcept(missing ...string) func(string) (string, error) {
	return func(name string) (string, error) {
		for _, m := range missing {
			if m == name {
				return "", fmt.Errorf("%w: %s", commandinpath.ErrNotFound, name)
			}
		}

		return "/fake/bin/" + name, nil
	}
}

type testRig struct {
	engine   *Engine
	launcher *fakeLauncher
	out      *bytes.Buffer
	err      *bytes.Buffer
}

func newTestRig(outcomes map[string]fakeOutcome, missing []string, opts ...Option) *testRig {
	rig := &testRig{
		launcher: newFakeLauncher(outcomes),
		out:      &bytes.Buffer{},
		err:      &bytes.Buffer{},
	}

	opts = append([]Option{
		WithLauncher(rig.launcher),
		WithLookPath(lookPathExcept(missing...)),
		WithNotifier(notify.New(rig.out, rig.err)),
	}, opts...)
	rig.engine = New(opts...)

	return rig
}
