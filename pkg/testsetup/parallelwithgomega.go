// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package testsetup

import (
	"context"
	"testing"

	"github.com/onsi/gomega"
	"github.com/sirupsen/logrus"

	"github.com/AccelByte/extend-round-scheduler/pkg/envelope"
)

const testScopeName = "round-scheduler-test"

// GomegaWithScope bundles the gomega assertions of a test with a scope to pass to the scheduler.
type GomegaWithScope struct {
	TestScope *envelope.Scope
	*gomega.GomegaWithT
}

func ParallelWithGomega(t *testing.T) GomegaWithScope {
	t.Parallel()
	return WithGomega(t)
}

func WithGomega(t *testing.T) GomegaWithScope {
	return GomegaWithScope{TestScope: NewTestScope(), GomegaWithT: gomega.NewGomegaWithT(t)}
}

func NewTestScope() *envelope.Scope {
	return envelope.NewRootScope(context.Background(), testScopeName, "")
}

// NewTestScopeWithLogger returns a scope logging through logger, e.g. a logrus test hook logger.
func NewTestScopeWithLogger(logger *logrus.Logger) *envelope.Scope {
	scope := NewTestScope()
	scope.SetLogger(logger)
	return scope
}
