// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ExamQuestionsColumns holds the columns for the "exam_questions" table.
	ExamQuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "exam_type", Type: field.TypeString},
		{Name: "attempt_number", Type: field.TypeInt, Default: 1},
		{Name: "question_number", Type: field.TypeInt},
		{Name: "question_text", Type: field.TypeString, Size: 2147483647},
		{Name: "choices", Type: field.TypeJSON},
		{Name: "correct_answer", Type: field.TypeString},
		{Name: "explanation", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "user_answer", Type: field.TypeString, Nullable: true},
		{Name: "is_correct", Type: field.TypeBool, Nullable: true},
		{Name: "is_idk", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// ExamQuestionsTable holds the schema information for the "exam_questions" table.
	ExamQuestionsTable = &schema.Table{
		Name:       "exam_questions",
		Columns:    ExamQuestionsColumns,
		PrimaryKey: []*schema.Column{ExamQuestionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "exam_questions_learning_sessions_questions",
				Columns:    []*schema.Column{ExamQuestionsColumns[13]},
				RefColumns: []*schema.Column{LearningSessionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "examquestion_session_id_exam_type",
				Unique:  false,
				Columns: []*schema.Column{ExamQuestionsColumns[13], ExamQuestionsColumns[2]},
			},
			{
				Name:    "examquestion_user_id",
				Unique:  false,
				Columns: []*schema.Column{ExamQuestionsColumns[1]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// LearningSessionsColumns holds the columns for the "learning_sessions" table.
	LearningSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "state", Type: field.TypeString, Default: "pre_exam_pending"},
		{Name: "session_number", Type: field.TypeInt, Default: 1},
		{Name: "pre_exam_score", Type: field.TypeInt, Nullable: true},
		{Name: "post_exam_score", Type: field.TypeInt, Nullable: true},
		{Name: "remediation_exam_score", Type: field.TypeInt, Nullable: true},
		{Name: "remediation_loop_count", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "topic_id", Type: field.TypeString},
	}
	// LearningSessionsTable holds the schema information for the "learning_sessions" table.
	LearningSessionsTable = &schema.Table{
		Name:       "learning_sessions",
		Columns:    LearningSessionsColumns,
		PrimaryKey: []*schema.Column{LearningSessionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "learning_sessions_topics_topic",
				Columns:    []*schema.Column{LearningSessionsColumns[10]},
				RefColumns: []*schema.Column{TopicsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "learningsession_user_id_topic_id",
				Unique:  false,
				Columns: []*schema.Column{LearningSessionsColumns[1], LearningSessionsColumns[10]},
			},
			{
				Name:    "learningsession_user_id_state",
				Unique:  false,
				Columns: []*schema.Column{LearningSessionsColumns[1], LearningSessionsColumns[2]},
			},
		},
	}
	// LessonsColumns holds the columns for the "lessons" table.
	LessonsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "lesson_type", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// LessonsTable holds the schema information for the "lessons" table.
	LessonsTable = &schema.Table{
		Name:       "lessons",
		Columns:    LessonsColumns,
		PrimaryKey: []*schema.Column{LessonsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "lessons_learning_sessions_lessons",
				Columns:    []*schema.Column{LessonsColumns[5]},
				RefColumns: []*schema.Column{LearningSessionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "lesson_session_id_lesson_type",
				Unique:  false,
				Columns: []*schema.Column{LessonsColumns[5], LessonsColumns[2]},
			},
		},
	}
	// RemediationMessagesColumns holds the columns for the "remediation_messages" table.
	RemediationMessagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "role", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "thread_id", Type: field.TypeString},
	}
	// RemediationMessagesTable holds the schema information for the "remediation_messages" table.
	RemediationMessagesTable = &schema.Table{
		Name:       "remediation_messages",
		Columns:    RemediationMessagesColumns,
		PrimaryKey: []*schema.Column{RemediationMessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "remediation_messages_remediation_threads_messages",
				Columns:    []*schema.Column{RemediationMessagesColumns[4]},
				RefColumns: []*schema.Column{RemediationThreadsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "remediationmessage_thread_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{RemediationMessagesColumns[4], RemediationMessagesColumns[3]},
			},
		},
	}
	// RemediationThreadsColumns holds the columns for the "remediation_threads" table.
	RemediationThreadsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "is_resolved", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "question_id", Type: field.TypeString},
	}
	// RemediationThreadsTable holds the schema information for the "remediation_threads" table.
	RemediationThreadsTable = &schema.Table{
		Name:       "remediation_threads",
		Columns:    RemediationThreadsColumns,
		PrimaryKey: []*schema.Column{RemediationThreadsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "remediation_threads_exam_questions_threads",
				Columns:    []*schema.Column{RemediationThreadsColumns[5]},
				RefColumns: []*schema.Column{ExamQuestionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "remediationthread_question_id_user_id",
				Unique:  true,
				Columns: []*schema.Column{RemediationThreadsColumns[5], RemediationThreadsColumns[2]},
			},
			{
				Name:    "remediationthread_session_id",
				Unique:  false,
				Columns: []*schema.Column{RemediationThreadsColumns[1]},
			},
		},
	}
	// StudentModelsColumns holds the columns for the "student_models" table.
	StudentModelsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "topic_id", Type: field.TypeString},
		{Name: "strengths", Type: field.TypeJSON, Nullable: true},
		{Name: "weaknesses", Type: field.TypeJSON, Nullable: true},
		{Name: "misconceptions", Type: field.TypeJSON, Nullable: true},
		{Name: "mastery_level", Type: field.TypeInt, Default: 0},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// StudentModelsTable holds the schema information for the "student_models" table.
	StudentModelsTable = &schema.Table{
		Name:       "student_models",
		Columns:    StudentModelsColumns,
		PrimaryKey: []*schema.Column{StudentModelsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "studentmodel_user_id_topic_id",
				Unique:  true,
				Columns: []*schema.Column{StudentModelsColumns[1], StudentModelsColumns[2]},
			},
		},
	}
	// TopicsColumns holds the columns for the "topics" table.
	TopicsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Default: ""},
		{Name: "display_order", Type: field.TypeInt},
		{Name: "prerequisite_id", Type: field.TypeString, Nullable: true},
	}
	// TopicsTable holds the schema information for the "topics" table.
	TopicsTable = &schema.Table{
		Name:       "topics",
		Columns:    TopicsColumns,
		PrimaryKey: []*schema.Column{TopicsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "topics_topics_dependents",
				Columns:    []*schema.Column{TopicsColumns[4]},
				RefColumns: []*schema.Column{TopicsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "topic_display_order",
				Unique:  false,
				Columns: []*schema.Column{TopicsColumns[3]},
			},
		},
	}
	// TopicProgressesColumns holds the columns for the "topic_progresses" table.
	TopicProgressesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "topic_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "locked"},
		{Name: "best_score", Type: field.TypeInt, Nullable: true},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// TopicProgressesTable holds the schema information for the "topic_progresses" table.
	TopicProgressesTable = &schema.Table{
		Name:       "topic_progresses",
		Columns:    TopicProgressesColumns,
		PrimaryKey: []*schema.Column{TopicProgressesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "topicprogress_user_id_topic_id",
				Unique:  true,
				Columns: []*schema.Column{TopicProgressesColumns[1], TopicProgressesColumns[2]},
			},
			{
				Name:    "topicprogress_user_id_status",
				Unique:  false,
				Columns: []*schema.Column{TopicProgressesColumns[1], TopicProgressesColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ExamQuestionsTable,
		LlmRequestEventsTable,
		LearningSessionsTable,
		LessonsTable,
		RemediationMessagesTable,
		RemediationThreadsTable,
		StudentModelsTable,
		TopicsTable,
		TopicProgressesTable,
	}
)

func init() {
	ExamQuestionsTable.ForeignKeys[0].RefTable = LearningSessionsTable
	LearningSessionsTable.ForeignKeys[0].RefTable = TopicsTable
	LessonsTable.ForeignKeys[0].RefTable = LearningSessionsTable
	RemediationMessagesTable.ForeignKeys[0].RefTable = RemediationThreadsTable
	RemediationThreadsTable.ForeignKeys[0].RefTable = ExamQuestionsTable
	TopicsTable.ForeignKeys[0].RefTable = TopicsTable
}
