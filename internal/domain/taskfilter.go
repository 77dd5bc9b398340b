package domain

import (
	"time"

	"github.com/google/uuid"
)

// This file holds the pure query helpers that derive named subsets of task
// and category collections. All of them are read-only, preserve the input
// order, and are composable with any owner filtering done by the caller
// before or after applying them.

// StatusPartition splits a task collection by completion status.
// Completed holds tasks marked done; Pending holds everything else,
// regardless of deadline.
type StatusPartition struct {
	Completed []*Task
	Pending   []*Task
}

// OverdueTasks returns the tasks whose deadline is strictly before now.
func OverdueTasks(tasks []*Task, now time.Time) []*Task {
	var overdue []*Task
	for _, t := range tasks {
		if t.Deadline.Before(now) {
			overdue = append(overdue, t)
		}
	}
	return overdue
}

// UpcomingTasks returns the exact complement of OverdueTasks over the same
// collection: tasks whose deadline is at now or later.
func UpcomingTasks(tasks []*Task, now time.Time) []*Task {
	var upcoming []*Task
	for _, t := range tasks {
		if !t.Deadline.Before(now) {
			upcoming = append(upcoming, t)
		}
	}
	return upcoming
}

// PartitionByStatus splits tasks into completed and pending subsets.
// Every task lands in exactly one of the two.
func PartitionByStatus(tasks []*Task) StatusPartition {
	var p StatusPartition
	for _, t := range tasks {
		if t.Status == TaskStatusDone {
			p.Completed = append(p.Completed, t)
		} else {
			p.Pending = append(p.Pending, t)
		}
	}
	return p
}

// EmptyCategories returns the categories that no task in the given
// collection belongs to.
func EmptyCategories(categories []*Category, tasks []*Task) []*Category {
	used := usedCategorySet(tasks)
	var empty []*Category
	for _, c := range categories {
		if !used[c.ID] {
			empty = append(empty, c)
		}
	}
	return empty
}

// FullCategories returns the exact complement of EmptyCategories over the
// same collection: categories with at least one associated task.
func FullCategories(categories []*Category, tasks []*Task) []*Category {
	used := usedCategorySet(tasks)
	var full []*Category
	for _, c := range categories {
		if used[c.ID] {
			full = append(full, c)
		}
	}
	return full
}

// usedCategorySet collects the IDs of every category referenced by a task.
func usedCategorySet(tasks []*Task) map[uuid.UUID]bool {
	used := make(map[uuid.UUID]bool)
	for _, t := range tasks {
		for _, id := range t.CategoryIDs {
			used[id] = true
		}
	}
	return used
}
