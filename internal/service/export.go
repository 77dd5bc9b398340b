package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"
	"github.com/taskhive/taskhive-api/internal/domain"
	"github.com/taskhive/taskhive-api/internal/store"
)

// TaskRecord is the flat task shape used by the structured listing export.
// The Category field carries the IDs of the categories the task belongs to.
type TaskRecord struct {
	ID          uuid.UUID           `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Category    []uuid.UUID         `json:"category"`
	Priority    domain.TaskPriority `json:"priority"`
	Deadline    time.Time           `json:"deadline"`
	Status      domain.TaskStatus   `json:"status"`
}

// TaskExporter serializes a user's tasks for programmatic consumption.
type TaskExporter struct {
	taskStore store.TaskStore
	logger    *slog.Logger
}

// NewTaskExporter creates a new TaskExporter.
// If logger is nil, a default logger will be used.
func NewTaskExporter(taskStore store.TaskStore, logger *slog.Logger) *TaskExporter {
	if logger == nil {
		logger = slog.Default()
	}

	return &TaskExporter{
		taskStore: taskStore,
		logger:    logger.With(slog.String("component", "task_exporter")),
	}
}

// Records returns the requester's tasks as export records, ordered by
// deadline ascending.
func (e *TaskExporter) Records(ctx context.Context, requesterID uuid.UUID) ([]TaskRecord, error) {
	tasks, err := e.taskStore.ListByUser(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	records := make([]TaskRecord, 0, len(tasks))
	for _, t := range tasks {
		categoryIDs := t.CategoryIDs
		if categoryIDs == nil {
			categoryIDs = []uuid.UUID{}
		}
		records = append(records, TaskRecord{
			ID:          t.ID,
			Title:       t.Title,
			Description: t.Description,
			Category:    categoryIDs,
			Priority:    t.Priority,
			Deadline:    t.Deadline,
			Status:      t.Status,
		})
	}

	return records, nil
}

// Export serializes the requester's tasks in the given format (json, csv,
// or pdf). It returns the document bytes and the matching content type.
// Returns ErrUnknownExportFormat for anything else.
func (e *TaskExporter) Export(ctx context.Context, requesterID uuid.UUID, format string) ([]byte, string, error) {
	records, err := e.Records(ctx, requesterID)
	if err != nil {
		return nil, "", err
	}

	switch strings.ToLower(format) {
	case "json":
		data, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return nil, "", err
		}
		return data, "application/json", nil

	case "csv":
		var b strings.Builder
		w := csv.NewWriter(&b)
		if err := w.Write([]string{"id", "title", "description", "category", "priority", "deadline", "status"}); err != nil {
			return nil, "", err
		}
		for _, r := range records {
			ids := make([]string, 0, len(r.Category))
			for _, id := range r.Category {
				ids = append(ids, id.String())
			}
			row := []string{
				r.ID.String(),
				r.Title,
				r.Description,
				strings.Join(ids, ";"),
				string(r.Priority),
				r.Deadline.UTC().Format(time.RFC3339),
				string(r.Status),
			}
			if err := w.Write(row); err != nil {
				return nil, "", err
			}
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return nil, "", err
		}
		return []byte(b.String()), "text/csv", nil

	case "pdf":
		pdf := gofpdf.New("P", "mm", "A4", "")
		pdf.AddPage()
		pdf.SetFont("Arial", "B", 14)
		pdf.Cell(40, 10, "Task Listing")
		pdf.Ln(12)
		pdf.SetFont("Arial", "", 10)
		for _, r := range records {
			line := fmt.Sprintf("[%s] %s (priority: %s, deadline: %s)",
				r.Status, r.Title, r.Priority, r.Deadline.UTC().Format("2006-01-02 15:04"))
			pdf.MultiCell(0, 6, line, "0", "L", false)
		}
		var buf bytes.Buffer
		if err := pdf.Output(&buf); err != nil {
			return nil, "", err
		}
		return buf.Bytes(), "application/pdf", nil

	default:
		return nil, "", fmt.Errorf("%w: %s", ErrUnknownExportFormat, format)
	}
}
