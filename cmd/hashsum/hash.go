// hash.go - concurrent file hashing

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/yawning/hashes"
)

// hashFiles hashes every path with up to opts.jobs files in flight and
// prints the digests in argument order once all of them succeed.
func hashFiles(ctx context.Context, log *zap.Logger, opts *options, paths []string, stdin io.Reader, stdout io.Writer) error {
	sum, err := opts.digester()
	if err != nil {
		return err
	}

	digests := make([]hashes.Digest, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.jobs)

	// Standard input can only be consumed once, so it is read up front.
	var stdinMsg []byte
	for _, p := range paths {
		if p == "-" {
			if stdinMsg, err = io.ReadAll(stdin); err != nil {
				return fmt.Errorf("%w: standard input: %v", errResource, err)
			}
			break
		}
	}

	for i, p := range paths {
		i, p := i, p
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			msg := stdinMsg
			if p != "-" {
				var err error
				if msg, err = os.ReadFile(p); err != nil {
					return fmt.Errorf("%w: %v", errResource, err)
				}
			}
			d, err := sum(msg)
			if err != nil {
				return err
			}
			log.Debug("hashed",
				zap.String("path", p),
				zap.Int("bytes", len(msg)),
				zap.String("algorithm", opts.algorithm),
			)
			digests[i] = d
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, p := range paths {
		if _, err := fmt.Fprintf(stdout, "%s %s\n", p, digests[i]); err != nil {
			return err
		}
	}
	return nil
}
