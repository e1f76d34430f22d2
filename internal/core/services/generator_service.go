// Copyright 2025.
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

package services

import (
	"context"
	"fmt"

	"github.com/Adembc/rdpgen/internal/core/domain"
	"github.com/Adembc/rdpgen/internal/core/ports"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type generatorService struct {
	hostSource    ports.HostSource
	documentStore ports.DocumentStore
	logger        *zap.SugaredLogger
	newRunID      func() string
}

// NewGeneratorService creates a new instance of generatorService.
func NewGeneratorService(logger *zap.SugaredLogger, hs ports.HostSource, ds ports.DocumentStore) *generatorService {
	return &generatorService{
		hostSource:    hs,
		documentStore: ds,
		logger:        logger,
		newRunID:      uuid.NewString,
	}
}

// Generate reads the host column and writes one connection file per host.
// The first failing write aborts the batch; files written before it stay.
func (s *generatorService) Generate(ctx context.Context, cfg domain.Config) (domain.Result, error) {
	res := domain.Result{RunID: s.newRunID(), State: domain.StateNotStarted}
	log := s.logger.With("run_id", res.RunID)

	cfg = cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		log.Warnw("validation failed", "error", err)
		return res, err
	}

	tmpl, err := domain.NewTemplate(cfg.Overrides)
	if err != nil {
		log.Warnw("invalid setting overrides", "error", err, "overrides", cfg.Overrides)
		return res, err
	}

	if err := s.documentStore.CheckDir(cfg.OutputDir); err != nil {
		log.Errorw("output directory rejected", "dir", cfg.OutputDir, "error", err)
		return res, err
	}

	names, err := s.hostSource.ExtractColumn(ctx, cfg.SourcePath, cfg.Sheet, cfg.ColumnName)
	if err != nil {
		log.Errorw("failed to read host column", "source", cfg.SourcePath, "column", cfg.ColumnName, "error", err)
		return res, err
	}
	hosts := domain.QualifyAll(names, cfg.DomainSuffix)

	log.Infow("generation start",
		"source", cfg.SourcePath,
		"column", cfg.ColumnName,
		"hosts", len(hosts),
		"out", cfg.OutputDir)

	res.Requested = len(hosts)
	res.State = domain.StateWritingFiles
	for _, host := range hosts {
		if err := ctx.Err(); err != nil {
			res.State = domain.StateFailed
			log.Warnw("generation cancelled", "written", res.Written, "error", err)
			return res, err
		}

		doc := tmpl.Render(host.FQDN, cfg.GatewayHost)
		path, n, err := s.documentStore.Save(cfg.OutputDir, host, doc)
		if err != nil {
			res.State = domain.StateFailed
			log.Errorw("write failed, aborting batch", "host", host.Name, "written", res.Written, "error", err)
			return res, domain.NewError(domain.CodeWriteFailure, fmt.Sprintf("writing connection file for %q", host.Name), err)
		}
		res.Written++
		res.Bytes += n
		res.Files = append(res.Files, path)
		log.Debugw("connection file written", "host", host.Name, "fqdn", host.FQDN, "path", path)
	}

	nonEmpty, err := s.documentStore.HasEntries(cfg.OutputDir)
	if err != nil {
		log.Warnw("failed to inspect output directory", "dir", cfg.OutputDir, "error", err)
	}
	res.DirNonEmpty = nonEmpty

	if res.Success() {
		res.State = domain.StateCompleted
	} else {
		res.State = domain.StateFailed
	}
	if res.Success() != res.DirNonEmpty {
		log.Warnw("directory check disagrees with write count",
			"dir_non_empty", res.DirNonEmpty, "written", res.Written, "requested", res.Requested)
	}

	log.Infow("generation end", "state", res.State, "written", res.Written, "bytes", res.Bytes)
	return res, nil
}

// Preview renders the template for a single host without writing anything.
func (s *generatorService) Preview(overrides map[string]string, fqdn, gateway string) (domain.Document, error) {
	tmpl, err := domain.NewTemplate(overrides)
	if err != nil {
		return nil, err
	}
	return tmpl.Render(fqdn, gateway), nil
}
