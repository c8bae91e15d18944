// Copyright 2025 hrtools LLC
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

// Package sync orchestrates the incremental retrieval pipeline:
// employees, their files, company files, and time-off records are
// fetched, filtered, normalized into documents, and emitted as bounded
// batches on a lazy, pull-based channel.
package sync

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hrtools/bamboosync/pkg/bamboohr"
	"github.com/hrtools/bamboosync/pkg/config"
	"github.com/hrtools/bamboosync/pkg/document"
	"github.com/hrtools/bamboosync/pkg/filter"
	"github.com/hrtools/bamboosync/pkg/manifest"
	"github.com/rs/zerolog"
)

// Fields available in the initial employee directory response
var directoryFields = []string{
	"id",
	"firstName",
	"lastName",
	"jobTitle",
	"department",
	"location",
	"workPhone",
	"mobilePhone",
	"workEmail",
	"homeEmail",
}

// Additional fields fetched per employee in a second round-trip
var detailFields = []string{
	"hireDate",
	"status",
	"lastChanged",
	"terminationDate",
}

// 📦 Batch is one ordered emission of documents, len <= the configured
// batch size
type Batch = []document.Document

// 🎯 Syncer drives the synchronization pipeline. One instance owns its
// client handle and configuration; it holds no state across runs beyond
// the window boundaries passed into Poll.
type Syncer struct {
	cfg      *config.Settings
	criteria *filter.Criteria
	pacer    Pacer
	client   bamboohr.Client
}

// 🏭 New creates a Syncer. Credentials must be supplied through
// SetCredentials before any sync entry point is used.
func New(cfg *config.Settings) *Syncer {
	return &Syncer{
		cfg:      cfg,
		criteria: filter.New(cfg),
		pacer:    NewRatePacer(defaultOpsPerSecond),
	}
}

// 🏭 NewWithClient creates a Syncer around an existing client and pacer,
// used by tests
func NewWithClient(cfg *config.Settings, client bamboohr.Client, pacer Pacer) *Syncer {
	return &Syncer{
		cfg:      cfg,
		criteria: filter.New(cfg),
		pacer:    pacer,
		client:   client,
	}
}

// 🔑 SetCredentials wires the remote client for the given tenant
func (s *Syncer) SetCredentials(creds bamboohr.Credentials) {
	s.client = bamboohr.New(creds)
}

// 📝 Config returns the current filter and toggle configuration for display
func (s *Syncer) Config() map[string]any {
	return s.cfg.Map()
}

// 🌐 buildContext derives the shared document build context from the client
func (s *Syncer) buildContext() document.Context {
	return document.Context{
		Company: s.client.Company(),
		BaseURL: s.client.AppURL(""),
	}
}

// 📥 LoadAll streams every document without a time window
func (s *Syncer) LoadAll(ctx context.Context) (<-chan Batch, error) {
	return s.Poll(ctx, nil, nil)
}

// 🔄 Poll streams documents changed within [start, end] as bounded
// batches. The producer is lazy: it performs no work beyond one batch
// ahead of the consumer, and stops when ctx is cancelled. Category-level
// fetch failures degrade to empty results; only a missing client is a
// hard precondition failure.
func (s *Syncer) Poll(ctx context.Context, start, end *time.Time) (<-chan Batch, error) {
	if s.client == nil {
		return nil, ErrMissingCredentials
	}

	out := make(chan Batch)
	go func() {
		defer close(out)
		s.run(ctx, out, start, end)
	}()
	return out, nil
}

func (s *Syncer) run(ctx context.Context, out chan<- Batch, start, end *time.Time) {
	logger := zerolog.Ctx(ctx).With().Str("run_id", uuid.NewString()).Logger()
	ctx = logger.WithContext(ctx)

	em := &emitter{out: out, size: s.cfg.BatchSize}

	// Employees
	employees, docs := s.employeeDocuments(ctx, start, end)
	for _, doc := range docs {
		if !em.add(ctx, doc) {
			return
		}
	}
	if !em.flush(ctx) {
		return
	}

	// Per-employee files
	if s.cfg.FilesEnabled() {
		for _, emp := range employees {
			for _, doc := range s.employeeFileDocuments(ctx, emp, start, end) {
				if !em.add(ctx, doc) {
					return
				}
			}
			if !em.flush(ctx) {
				return
			}
			if err := s.pacer.Wait(ctx); err != nil {
				return
			}
		}

		// Company-wide files
		for _, doc := range s.companyFileDocuments(ctx, start, end) {
			if !em.add(ctx, doc) {
				return
			}
		}
		if !em.flush(ctx) {
			return
		}
	}

	// Time-off records
	if s.cfg.TimeOffEnabled() {
		for _, doc := range s.timeOffDocuments(ctx, start, end) {
			if !em.add(ctx, doc) {
				return
			}
		}
		if !em.flush(ctx) {
			return
		}
	}
}

// 👥 employeeRef is the slice of employee identity the later phases need
type employeeRef struct {
	ID   string
	Name string
}

// employeeDocuments retrieves the directory, fetches per-employee detail
// (deliberate N+1 — directories are small and there is no batch detail
// endpoint), applies filters and the time window, and builds documents.
func (s *Syncer) employeeDocuments(ctx context.Context, start, end *time.Time) ([]employeeRef, []document.Document) {
	logger := zerolog.Ctx(ctx)
	logger.Info().Msg("fetching employee data")

	employees, err := s.fetchDirectory(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("fetching employee directory")
		return nil, nil
	}

	filterTime := effectiveFilterTime(start, s.cfg.UpdatedSinceTime())

	var refs []employeeRef
	var docs []document.Document
	for _, emp := range employees {
		if emp.ID() == "" {
			continue
		}

		detail := s.fetchEmployeeDetail(ctx, emp.ID())

		if !s.criteria.IncludeEmployee(emp, detail) {
			continue
		}

		// Window filtering on the effective last-changed timestamp;
		// unparseable timestamps include (fail open)
		lastChanged := document.ParseTimePtr(detail.Str("lastChanged"))
		if filterTime != nil && lastChanged != nil && lastChanged.Before(*filterTime) {
			continue
		}
		if end != nil && lastChanged != nil && lastChanged.After(*end) {
			continue
		}

		docs = append(docs, document.BuildEmployee(emp, detail, s.buildContext()))
		refs = append(refs, employeeRef{ID: emp.ID(), Name: emp.Name()})

		if err := s.pacer.Wait(ctx); err != nil {
			return refs, docs
		}
	}

	return refs, docs
}

// fetchDirectory retrieves the lightweight employee directory listing
func (s *Syncer) fetchDirectory(ctx context.Context) ([]document.RawEmployee, error) {
	resp, err := s.client.GetJSON(ctx, "employees/directory", map[string]string{
		"fields": strings.Join(directoryFields, ","),
	})
	if err != nil {
		return nil, err
	}

	body, ok := resp.(map[string]any)
	if !ok {
		return nil, nil
	}
	entries, _ := body["employees"].([]any)

	var employees []document.RawEmployee
	for _, entry := range entries {
		if m, ok := entry.(map[string]any); ok {
			employees = append(employees, document.RawEmployee(m))
		}
	}
	return employees, nil
}

// fetchEmployeeDetail fetches the detail sub-resource; failures degrade to
// an empty mapping so downstream logic never sees a nil detail
func (s *Syncer) fetchEmployeeDetail(ctx context.Context, employeeID string) document.RawEmployeeDetail {
	logger := zerolog.Ctx(ctx)

	resp, err := s.client.GetJSON(ctx, "employees/"+employeeID, map[string]string{
		"fields": strings.Join(detailFields, ","),
	})
	if err != nil {
		logger.Warn().Str("employee_id", employeeID).Err(err).Msg("fetching employee details")
		return document.RawEmployeeDetail{}
	}

	detail, ok := resp.(map[string]any)
	if !ok {
		return document.RawEmployeeDetail{}
	}
	return document.RawEmployeeDetail(detail)
}

// employeeFileDocuments fetches and processes one employee's file manifest
func (s *Syncer) employeeFileDocuments(ctx context.Context, emp employeeRef, start, end *time.Time) []document.Document {
	logger := zerolog.Ctx(ctx)

	content, err := s.client.GetXML(ctx, "employees/"+emp.ID+"/files/view", nil)
	if err != nil {
		logger.Warn().Str("employee_id", emp.ID).Err(err).Msg("fetching employee files")
		return nil
	}

	files := manifest.ParseEmployeeFiles(ctx, content, emp.ID)
	return s.fileDocuments(ctx, files, document.FileScopeEmployee, emp.Name, start, end)
}

// companyFileDocuments fetches and processes the company-wide file manifest
func (s *Syncer) companyFileDocuments(ctx context.Context, start, end *time.Time) []document.Document {
	logger := zerolog.Ctx(ctx)

	content, err := s.client.GetXML(ctx, "files/view", nil)
	if err != nil {
		logger.Warn().Err(err).Msg("fetching company files")
		return nil
	}

	files := manifest.ParseCompanyFiles(ctx, content)
	return s.fileDocuments(ctx, files, document.FileScopeCompany, "", start, end)
}

// fileDocuments runs the shared filter/download/build pipeline. A single
// file's download failure skips that file only.
func (s *Syncer) fileDocuments(ctx context.Context, files []manifest.FileRecord, scope document.FileScope, owner string, start, end *time.Time) []document.Document {
	logger := zerolog.Ctx(ctx)

	var docs []document.Document
	for _, f := range files {
		if !withinWindow(f.LastUpdated, start, end) {
			continue
		}
		if !s.criteria.IncludeFile(f) {
			continue
		}

		content, err := s.client.GetRaw(ctx, "files/"+f.ID+"/download")
		if err != nil {
			logger.Warn().Str("file_id", f.ID).Err(err).Msg("downloading file content")
			continue
		}

		docs = append(docs, document.BuildFile(f, content, scope, owner, s.buildContext()))

		if err := s.pacer.Wait(ctx); err != nil {
			return docs
		}
	}
	return docs
}

// timeOffDocuments fetches time-off requests for the window (or the
// default span of the prior, current, and next calendar year) and builds
// documents, resolving employee names through a directory lookup.
func (s *Syncer) timeOffDocuments(ctx context.Context, start, end *time.Time) []document.Document {
	logger := zerolog.Ctx(ctx)
	logger.Info().Msg("fetching time-off data")

	// Directory refetch for the id -> name lookup; degrade to no names
	names := map[string]string{}
	if employees, err := s.fetchDirectory(ctx); err != nil {
		logger.Warn().Err(err).Msg("fetching employee directory for time-off records")
	} else {
		for _, emp := range employees {
			if emp.ID() != "" {
				names[emp.ID()] = emp.Name()
			}
		}
	}

	currentYear := time.Now().UTC().Year()
	params := map[string]string{
		"start": formatDate(start, time.Date(currentYear-1, time.January, 1, 0, 0, 0, 0, time.UTC)),
		"end":   formatDate(end, time.Date(currentYear+1, time.December, 31, 0, 0, 0, 0, time.UTC)),
	}

	resp, err := s.client.GetJSON(ctx, "time_off/requests", params)
	if err != nil {
		logger.Error().Err(err).Msg("fetching time-off data")
		return nil
	}

	var docs []document.Document
	for _, record := range timeOffRecords(resp) {
		if !s.criteria.IncludeTimeOff(record) {
			continue
		}

		docs = append(docs, document.BuildTimeOff(record, names[record.Str("employeeId")], s.buildContext()))

		if err := s.pacer.Wait(ctx); err != nil {
			return docs
		}
	}
	return docs
}

// timeOffRecords normalizes the two response shapes the API produces:
// a bare list, or an object wrapping the list under "requests"
func timeOffRecords(resp any) []document.RawTimeOff {
	var entries []any
	switch body := resp.(type) {
	case []any:
		entries = body
	case map[string]any:
		entries, _ = body["requests"].([]any)
	}

	var records []document.RawTimeOff
	for _, entry := range entries {
		if m, ok := entry.(map[string]any); ok {
			records = append(records, document.RawTimeOff(m))
		}
	}
	return records
}

// ✅ ValidateSettings performs one lightweight authenticated call and maps
// failures onto the credential/permission/validation error taxonomy
func (s *Syncer) ValidateSettings(ctx context.Context) error {
	if s.client == nil {
		return ErrMissingCredentials
	}

	_, err := s.client.GetJSON(ctx, "employees/directory", map[string]string{"limit": "1"})
	if err == nil {
		return nil
	}

	if reqErr, ok := bamboohr.AsRequestError(err); ok {
		switch reqErr.StatusCode {
		case 401:
			return &CredentialError{Err: err}
		case 403:
			return &PermissionError{Err: err}
		}
	}
	return &ValidationError{Err: err}
}

// effectiveFilterTime is the later of the poll start time and the
// configured updated-since floor
func effectiveFilterTime(start, floor *time.Time) *time.Time {
	if start == nil {
		return floor
	}
	if floor == nil {
		return start
	}
	if floor.After(*start) {
		return floor
	}
	return start
}

// withinWindow checks a raw timestamp against the poll window, failing
// open on parse failure
func withinWindow(value string, start, end *time.Time) bool {
	t := document.ParseTimePtr(value)
	if t == nil {
		return true
	}
	if start != nil && t.Before(*start) {
		return false
	}
	if end != nil && t.After(*end) {
		return false
	}
	return true
}

// formatDate renders an explicit window boundary, or the default
func formatDate(t *time.Time, fallback time.Time) string {
	if t != nil {
		return t.UTC().Format("2006-01-02")
	}
	return fallback.Format("2006-01-02")
}

// 📦 emitter chunks documents into bounded batches, preserving encounter
// order. add and flush return false when the consumer is gone.
type emitter struct {
	out  chan<- Batch
	size int
	buf  []document.Document
}

func (e *emitter) add(ctx context.Context, doc document.Document) bool {
	e.buf = append(e.buf, doc)
	if len(e.buf) >= e.size {
		return e.flush(ctx)
	}
	return true
}

func (e *emitter) flush(ctx context.Context) bool {
	if len(e.buf) == 0 {
		return true
	}
	batch := make(Batch, len(e.buf))
	copy(batch, e.buf)
	e.buf = e.buf[:0]

	select {
	case e.out <- batch:
		return true
	case <-ctx.Done():
		return false
	}
}
