// Package domain defines the core business entities of Taskhive (User,
// Category, Task), their validation rules, and the pure query helpers that
// derive named subsets of task and category collections.
package domain
