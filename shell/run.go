// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shell

import "context"

// Run delivers events from src to app until app terminates, src runs dry,
// ctx is done, or handling an event fails. The App is closed on return.
//
// ctx is checked between events; a NextEvent that is blocked is not
// interrupted.
func Run(ctx context.Context, src EventSource, app *App) error {
	defer app.Close()
	for app.State() != Terminated {
		if err := ctx.Err(); err != nil {
			return err
		}
		ev := src.NextEvent()
		if ev == nil {
			return nil
		}
		if err := app.Handle(ctx, ev); err != nil {
			return err
		}
	}
	return nil
}
