// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package operation

import (
	"context"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// 🏃 OperationRunner executes operations and the per-file tasks inside them
type OperationRunner struct {
	logger *zerolog.Logger
	async  bool
	limit  int
}

// 🏗️ NewRunner creates a new runner. limit caps the number of concurrent
// tasks when async is set; zero or less means no cap.
func NewRunner(logger *zerolog.Logger, async bool, limit int) *OperationRunner {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &OperationRunner{
		logger: logger,
		async:  async,
		limit:  limit,
	}
}

// 🏃 Run executes an operation
func (r *OperationRunner) Run(ctx context.Context, op Operation) error {
	r.logger.Debug().Str("operation", op.Name()).Bool("async", r.async).Msg("running operation")
	if err := op.Execute(ctx); err != nil {
		return errors.Errorf("executing %s: %w", op.Name(), err)
	}
	return nil
}

// 🔁 Each calls fn for every index in [0, n). Tasks run one after another
// unless the runner is async, in which case they share an errgroup.
func (r *OperationRunner) Each(ctx context.Context, n int, fn func(ctx context.Context, i int) error) error {
	if r.async {
		return r.eachAsync(ctx, n, fn)
	}
	return r.eachSync(ctx, n, fn)
}

// 🔄 eachSync runs tasks in order and stops at the first error
func (r *OperationRunner) eachSync(ctx context.Context, n int, fn func(ctx context.Context, i int) error) error {
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return errors.Errorf("operation cancelled: %w", err)
		}
		if err := fn(ctx, i); err != nil {
			return err
		}
	}
	return nil
}

// ⚡ eachAsync runs tasks concurrently
func (r *OperationRunner) eachAsync(ctx context.Context, n int, fn func(ctx context.Context, i int) error) error {
	g, gctx := errgroup.WithContext(ctx)
	if r.limit > 0 {
		g.SetLimit(r.limit)
	}

	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return errors.Errorf("operation cancelled: %w", err)
			}
			return fn(gctx, i)
		})
	}

	return g.Wait()
}
