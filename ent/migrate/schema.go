// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ConceptsColumns holds the columns for the "concepts" table.
	ConceptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "course_id", Type: field.TypeString},
		{Name: "concept_id", Type: field.TypeString},
		{Name: "unit_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "bloom_level", Type: field.TypeString, Default: "remember"},
		{Name: "status", Type: field.TypeString, Default: "new"},
		{Name: "prerequisites", Type: field.TypeJSON, Nullable: true},
		{Name: "difficulty", Type: field.TypeFloat64, Default: 0.5},
		{Name: "bloom_target", Type: field.TypeString, Default: "apply"},
	}
	// ConceptsTable holds the schema information for the "concepts" table.
	ConceptsTable = &schema.Table{
		Name:       "concepts",
		Columns:    ConceptsColumns,
		PrimaryKey: []*schema.Column{ConceptsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "concept_course_id_concept_id",
				Unique:  true,
				Columns: []*schema.Column{ConceptsColumns[1], ConceptsColumns[2]},
			},
			{
				Name:    "concept_course_id_status",
				Unique:  false,
				Columns: []*schema.Column{ConceptsColumns[1], ConceptsColumns[6]},
			},
		},
	}
	// CoursesColumns holds the columns for the "courses" table.
	CoursesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "units", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// CoursesTable holds the schema information for the "courses" table.
	CoursesTable = &schema.Table{
		Name:       "courses",
		Columns:    CoursesColumns,
		PrimaryKey: []*schema.Column{CoursesColumns[0]},
	}
	// ProgressRecordsColumns holds the columns for the "progress_records" table.
	ProgressRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "course_id", Type: field.TypeString},
		{Name: "concept_id", Type: field.TypeString},
		{Name: "practice_count", Type: field.TypeInt, Default: 0},
		{Name: "correct_count", Type: field.TypeInt, Default: 0},
		{Name: "recent_results", Type: field.TypeJSON, Nullable: true},
		{Name: "mastery_score", Type: field.TypeFloat64, Default: 0},
		{Name: "fsrs_stability", Type: field.TypeFloat64, Default: 0},
		{Name: "fsrs_difficulty", Type: field.TypeFloat64, Default: 0},
		{Name: "fsrs_elapsed_days", Type: field.TypeFloat64, Default: 0},
		{Name: "fsrs_scheduled_days", Type: field.TypeInt, Default: 0},
		{Name: "fsrs_reps", Type: field.TypeInt, Default: 0},
		{Name: "fsrs_lapses", Type: field.TypeInt, Default: 0},
		{Name: "fsrs_state", Type: field.TypeString, Default: "new"},
		{Name: "due", Type: field.TypeTime, Nullable: true},
		{Name: "last_practiced", Type: field.TypeTime, Nullable: true},
		{Name: "error_history", Type: field.TypeJSON, Nullable: true},
		{Name: "version", Type: field.TypeInt64, Default: 1},
	}
	// ProgressRecordsTable holds the schema information for the "progress_records" table.
	ProgressRecordsTable = &schema.Table{
		Name:       "progress_records",
		Columns:    ProgressRecordsColumns,
		PrimaryKey: []*schema.Column{ProgressRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "progressrecord_course_id_concept_id",
				Unique:  true,
				Columns: []*schema.Column{ProgressRecordsColumns[1], ProgressRecordsColumns[2]},
			},
			{
				Name:    "progressrecord_course_id_due",
				Unique:  false,
				Columns: []*schema.Column{ProgressRecordsColumns[1], ProgressRecordsColumns[14]},
			},
		},
	}
	// ReviewEventsColumns holds the columns for the "review_events" table.
	ReviewEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "course_id", Type: field.TypeString},
		{Name: "concept_id", Type: field.TypeString},
		{Name: "rating", Type: field.TypeInt},
		{Name: "correct", Type: field.TypeBool},
		{Name: "error_class", Type: field.TypeString, Nullable: true},
		{Name: "stability", Type: field.TypeFloat64},
		{Name: "interval_days", Type: field.TypeInt},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
	}
	// ReviewEventsTable holds the schema information for the "review_events" table.
	ReviewEventsTable = &schema.Table{
		Name:       "review_events",
		Columns:    ReviewEventsColumns,
		PrimaryKey: []*schema.Column{ReviewEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reviewevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[1]},
			},
			{
				Name:    "reviewevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[2]},
			},
			{
				Name:    "reviewevent_course_id_concept_id",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[3], ReviewEventsColumns[4]},
			},
		},
	}
	// SessionLogsColumns holds the columns for the "session_logs" table.
	SessionLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "course_id", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString},
		{Name: "session_type", Type: field.TypeString},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "ended_at", Type: field.TypeTime},
		{Name: "concept_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "exercises", Type: field.TypeJSON, Nullable: true},
		{Name: "score", Type: field.TypeJSON, Nullable: true},
		{Name: "summary", Type: field.TypeString, Nullable: true},
	}
	// SessionLogsTable holds the schema information for the "session_logs" table.
	SessionLogsTable = &schema.Table{
		Name:       "session_logs",
		Columns:    SessionLogsColumns,
		PrimaryKey: []*schema.Column{SessionLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionlog_sequence",
				Unique:  false,
				Columns: []*schema.Column{SessionLogsColumns[1]},
			},
			{
				Name:    "sessionlog_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionLogsColumns[2]},
			},
			{
				Name:    "sessionlog_course_id",
				Unique:  false,
				Columns: []*schema.Column{SessionLogsColumns[3]},
			},
			{
				Name:    "sessionlog_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionLogsColumns[4]},
			},
		},
	}
	// TransitionEventsColumns holds the columns for the "transition_events" table.
	TransitionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "course_id", Type: field.TypeString},
		{Name: "concept_id", Type: field.TypeString},
		{Name: "from_status", Type: field.TypeString},
		{Name: "to_status", Type: field.TypeString},
		{Name: "trigger", Type: field.TypeString},
		{Name: "mastery_score", Type: field.TypeFloat64},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
	}
	// TransitionEventsTable holds the schema information for the "transition_events" table.
	TransitionEventsTable = &schema.Table{
		Name:       "transition_events",
		Columns:    TransitionEventsColumns,
		PrimaryKey: []*schema.Column{TransitionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "transitionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{TransitionEventsColumns[1]},
			},
			{
				Name:    "transitionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{TransitionEventsColumns[2]},
			},
			{
				Name:    "transitionevent_course_id_concept_id",
				Unique:  false,
				Columns: []*schema.Column{TransitionEventsColumns[3], TransitionEventsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ConceptsTable,
		CoursesTable,
		ProgressRecordsTable,
		ReviewEventsTable,
		SessionLogsTable,
		TransitionEventsTable,
	}
)

func init() {
}
