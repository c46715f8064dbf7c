// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

// serve runs the invoke API until ctx is cancelled.
func serve(ctx context.Context, address string, handler http.Handler) error {
	srv := &http.Server{
		Addr:    address,
		Handler: handler,
	}

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		log.Warnf("Listening on %s", address)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return group.Wait()
}
