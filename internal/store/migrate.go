package store

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// learnerStatesColumns holds one JSON document per learner plus the
	// revision used for compare-and-swap writes.
	learnerStatesColumns = []*schema.Column{
		{Name: "learner_id", Type: field.TypeString, Unique: true},
		{Name: "revision", Type: field.TypeInt64},
		{Name: "data", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	learnerStatesTable = &schema.Table{
		Name:       "learner_states",
		Columns:    learnerStatesColumns,
		PrimaryKey: []*schema.Column{learnerStatesColumns[0]},
	}

	// answerEventsColumns is the append-only answer log.
	answerEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString, Default: ""},
		{Name: "skill_id", Type: field.TypeInt},
		{Name: "question_id", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeInt},
		{Name: "correct", Type: field.TypeBool},
		{Name: "time_spent", Type: field.TypeFloat64},
	}
	answerEventsTable = &schema.Table{
		Name:       "answer_events",
		Columns:    answerEventsColumns,
		PrimaryKey: []*schema.Column{answerEventsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "answerevent_learner_id", Columns: []*schema.Column{answerEventsColumns[3]}},
			{Name: "answerevent_skill_id", Columns: []*schema.Column{answerEventsColumns[5]}},
		},
	}

	tables = []*schema.Table{learnerStatesTable, answerEventsTable}
)

// migrate creates or upgrades every table.
func migrate(ctx context.Context, drv dialect.Driver) error {
	m, err := schema.NewMigrate(drv)
	if err != nil {
		return fmt.Errorf("new migrate: %w", err)
	}
	return m.Create(ctx, tables...)
}
