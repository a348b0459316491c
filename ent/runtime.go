// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/tutorloop/ent/examquestion"
	"github.com/abhisek/tutorloop/ent/learningsession"
	"github.com/abhisek/tutorloop/ent/lesson"
	"github.com/abhisek/tutorloop/ent/llmrequestevent"
	"github.com/abhisek/tutorloop/ent/remediationmessage"
	"github.com/abhisek/tutorloop/ent/remediationthread"
	"github.com/abhisek/tutorloop/ent/schema"
	"github.com/abhisek/tutorloop/ent/studentmodel"
	"github.com/abhisek/tutorloop/ent/topic"
	"github.com/abhisek/tutorloop/ent/topicprogress"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	examquestionFields := schema.ExamQuestion{}.Fields()
	_ = examquestionFields
	// examquestionDescSessionID is the schema descriptor for session_id field.
	examquestionDescSessionID := examquestionFields[1].Descriptor()
	// examquestion.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	examquestion.SessionIDValidator = examquestionDescSessionID.Validators[0].(func(string) error)
	// examquestionDescUserID is the schema descriptor for user_id field.
	examquestionDescUserID := examquestionFields[2].Descriptor()
	// examquestion.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	examquestion.UserIDValidator = examquestionDescUserID.Validators[0].(func(string) error)
	// examquestionDescAttemptNumber is the schema descriptor for attempt_number field.
	examquestionDescAttemptNumber := examquestionFields[4].Descriptor()
	// examquestion.DefaultAttemptNumber holds the default value on creation for the attempt_number field.
	examquestion.DefaultAttemptNumber = examquestionDescAttemptNumber.Default.(int)
	// examquestionDescQuestionText is the schema descriptor for question_text field.
	examquestionDescQuestionText := examquestionFields[6].Descriptor()
	// examquestion.QuestionTextValidator is a validator for the "question_text" field. It is called by the builders before save.
	examquestion.QuestionTextValidator = examquestionDescQuestionText.Validators[0].(func(string) error)
	// examquestionDescCorrectAnswer is the schema descriptor for correct_answer field.
	examquestionDescCorrectAnswer := examquestionFields[8].Descriptor()
	// examquestion.CorrectAnswerValidator is a validator for the "correct_answer" field. It is called by the builders before save.
	examquestion.CorrectAnswerValidator = examquestionDescCorrectAnswer.Validators[0].(func(string) error)
	// examquestionDescExplanation is the schema descriptor for explanation field.
	examquestionDescExplanation := examquestionFields[9].Descriptor()
	// examquestion.DefaultExplanation holds the default value on creation for the explanation field.
	examquestion.DefaultExplanation = examquestionDescExplanation.Default.(string)
	// examquestionDescIsIdk is the schema descriptor for is_idk field.
	examquestionDescIsIdk := examquestionFields[12].Descriptor()
	// examquestion.DefaultIsIdk holds the default value on creation for the is_idk field.
	examquestion.DefaultIsIdk = examquestionDescIsIdk.Default.(bool)
	// examquestionDescCreatedAt is the schema descriptor for created_at field.
	examquestionDescCreatedAt := examquestionFields[13].Descriptor()
	// examquestion.DefaultCreatedAt holds the default value on creation for the created_at field.
	examquestion.DefaultCreatedAt = examquestionDescCreatedAt.Default.(func() time.Time)
	// examquestionDescID is the schema descriptor for id field.
	examquestionDescID := examquestionFields[0].Descriptor()
	// examquestion.DefaultID holds the default value on creation for the id field.
	examquestion.DefaultID = examquestionDescID.Default.(func() string)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	learningsessionFields := schema.LearningSession{}.Fields()
	_ = learningsessionFields
	// learningsessionDescUserID is the schema descriptor for user_id field.
	learningsessionDescUserID := learningsessionFields[1].Descriptor()
	// learningsession.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	learningsession.UserIDValidator = learningsessionDescUserID.Validators[0].(func(string) error)
	// learningsessionDescTopicID is the schema descriptor for topic_id field.
	learningsessionDescTopicID := learningsessionFields[2].Descriptor()
	// learningsession.TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	learningsession.TopicIDValidator = learningsessionDescTopicID.Validators[0].(func(string) error)
	// learningsessionDescState is the schema descriptor for state field.
	learningsessionDescState := learningsessionFields[3].Descriptor()
	// learningsession.DefaultState holds the default value on creation for the state field.
	learningsession.DefaultState = learningsessionDescState.Default.(string)
	// learningsessionDescSessionNumber is the schema descriptor for session_number field.
	learningsessionDescSessionNumber := learningsessionFields[4].Descriptor()
	// learningsession.DefaultSessionNumber holds the default value on creation for the session_number field.
	learningsession.DefaultSessionNumber = learningsessionDescSessionNumber.Default.(int)
	// learningsessionDescRemediationLoopCount is the schema descriptor for remediation_loop_count field.
	learningsessionDescRemediationLoopCount := learningsessionFields[8].Descriptor()
	// learningsession.DefaultRemediationLoopCount holds the default value on creation for the remediation_loop_count field.
	learningsession.DefaultRemediationLoopCount = learningsessionDescRemediationLoopCount.Default.(int)
	// learningsessionDescCreatedAt is the schema descriptor for created_at field.
	learningsessionDescCreatedAt := learningsessionFields[9].Descriptor()
	// learningsession.DefaultCreatedAt holds the default value on creation for the created_at field.
	learningsession.DefaultCreatedAt = learningsessionDescCreatedAt.Default.(func() time.Time)
	// learningsessionDescUpdatedAt is the schema descriptor for updated_at field.
	learningsessionDescUpdatedAt := learningsessionFields[10].Descriptor()
	// learningsession.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	learningsession.DefaultUpdatedAt = learningsessionDescUpdatedAt.Default.(func() time.Time)
	// learningsession.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	learningsession.UpdateDefaultUpdatedAt = learningsessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// learningsessionDescID is the schema descriptor for id field.
	learningsessionDescID := learningsessionFields[0].Descriptor()
	// learningsession.DefaultID holds the default value on creation for the id field.
	learningsession.DefaultID = learningsessionDescID.Default.(func() string)
	lessonFields := schema.Lesson{}.Fields()
	_ = lessonFields
	// lessonDescSessionID is the schema descriptor for session_id field.
	lessonDescSessionID := lessonFields[1].Descriptor()
	// lesson.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	lesson.SessionIDValidator = lessonDescSessionID.Validators[0].(func(string) error)
	// lessonDescUserID is the schema descriptor for user_id field.
	lessonDescUserID := lessonFields[2].Descriptor()
	// lesson.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	lesson.UserIDValidator = lessonDescUserID.Validators[0].(func(string) error)
	// lessonDescContent is the schema descriptor for content field.
	lessonDescContent := lessonFields[4].Descriptor()
	// lesson.ContentValidator is a validator for the "content" field. It is called by the builders before save.
	lesson.ContentValidator = lessonDescContent.Validators[0].(func(string) error)
	// lessonDescCreatedAt is the schema descriptor for created_at field.
	lessonDescCreatedAt := lessonFields[5].Descriptor()
	// lesson.DefaultCreatedAt holds the default value on creation for the created_at field.
	lesson.DefaultCreatedAt = lessonDescCreatedAt.Default.(func() time.Time)
	// lessonDescID is the schema descriptor for id field.
	lessonDescID := lessonFields[0].Descriptor()
	// lesson.DefaultID holds the default value on creation for the id field.
	lesson.DefaultID = lessonDescID.Default.(func() string)
	remediationmessageFields := schema.RemediationMessage{}.Fields()
	_ = remediationmessageFields
	// remediationmessageDescThreadID is the schema descriptor for thread_id field.
	remediationmessageDescThreadID := remediationmessageFields[1].Descriptor()
	// remediationmessage.ThreadIDValidator is a validator for the "thread_id" field. It is called by the builders before save.
	remediationmessage.ThreadIDValidator = remediationmessageDescThreadID.Validators[0].(func(string) error)
	// remediationmessageDescContent is the schema descriptor for content field.
	remediationmessageDescContent := remediationmessageFields[3].Descriptor()
	// remediationmessage.ContentValidator is a validator for the "content" field. It is called by the builders before save.
	remediationmessage.ContentValidator = remediationmessageDescContent.Validators[0].(func(string) error)
	// remediationmessageDescCreatedAt is the schema descriptor for created_at field.
	remediationmessageDescCreatedAt := remediationmessageFields[4].Descriptor()
	// remediationmessage.DefaultCreatedAt holds the default value on creation for the created_at field.
	remediationmessage.DefaultCreatedAt = remediationmessageDescCreatedAt.Default.(func() time.Time)
	// remediationmessageDescID is the schema descriptor for id field.
	remediationmessageDescID := remediationmessageFields[0].Descriptor()
	// remediationmessage.DefaultID holds the default value on creation for the id field.
	remediationmessage.DefaultID = remediationmessageDescID.Default.(func() string)
	remediationthreadFields := schema.RemediationThread{}.Fields()
	_ = remediationthreadFields
	// remediationthreadDescQuestionID is the schema descriptor for question_id field.
	remediationthreadDescQuestionID := remediationthreadFields[1].Descriptor()
	// remediationthread.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	remediationthread.QuestionIDValidator = remediationthreadDescQuestionID.Validators[0].(func(string) error)
	// remediationthreadDescSessionID is the schema descriptor for session_id field.
	remediationthreadDescSessionID := remediationthreadFields[2].Descriptor()
	// remediationthread.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	remediationthread.SessionIDValidator = remediationthreadDescSessionID.Validators[0].(func(string) error)
	// remediationthreadDescUserID is the schema descriptor for user_id field.
	remediationthreadDescUserID := remediationthreadFields[3].Descriptor()
	// remediationthread.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	remediationthread.UserIDValidator = remediationthreadDescUserID.Validators[0].(func(string) error)
	// remediationthreadDescIsResolved is the schema descriptor for is_resolved field.
	remediationthreadDescIsResolved := remediationthreadFields[4].Descriptor()
	// remediationthread.DefaultIsResolved holds the default value on creation for the is_resolved field.
	remediationthread.DefaultIsResolved = remediationthreadDescIsResolved.Default.(bool)
	// remediationthreadDescCreatedAt is the schema descriptor for created_at field.
	remediationthreadDescCreatedAt := remediationthreadFields[5].Descriptor()
	// remediationthread.DefaultCreatedAt holds the default value on creation for the created_at field.
	remediationthread.DefaultCreatedAt = remediationthreadDescCreatedAt.Default.(func() time.Time)
	// remediationthreadDescID is the schema descriptor for id field.
	remediationthreadDescID := remediationthreadFields[0].Descriptor()
	// remediationthread.DefaultID holds the default value on creation for the id field.
	remediationthread.DefaultID = remediationthreadDescID.Default.(func() string)
	studentmodelFields := schema.StudentModel{}.Fields()
	_ = studentmodelFields
	// studentmodelDescUserID is the schema descriptor for user_id field.
	studentmodelDescUserID := studentmodelFields[1].Descriptor()
	// studentmodel.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	studentmodel.UserIDValidator = studentmodelDescUserID.Validators[0].(func(string) error)
	// studentmodelDescTopicID is the schema descriptor for topic_id field.
	studentmodelDescTopicID := studentmodelFields[2].Descriptor()
	// studentmodel.TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	studentmodel.TopicIDValidator = studentmodelDescTopicID.Validators[0].(func(string) error)
	// studentmodelDescMasteryLevel is the schema descriptor for mastery_level field.
	studentmodelDescMasteryLevel := studentmodelFields[6].Descriptor()
	// studentmodel.DefaultMasteryLevel holds the default value on creation for the mastery_level field.
	studentmodel.DefaultMasteryLevel = studentmodelDescMasteryLevel.Default.(int)
	// studentmodel.MasteryLevelValidator is a validator for the "mastery_level" field. It is called by the builders before save.
	studentmodel.MasteryLevelValidator = func() func(int) error {
		validators := studentmodelDescMasteryLevel.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(mastery_level int) error {
			for _, fn := range fns {
				if err := fn(mastery_level); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// studentmodelDescUpdatedAt is the schema descriptor for updated_at field.
	studentmodelDescUpdatedAt := studentmodelFields[7].Descriptor()
	// studentmodel.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	studentmodel.DefaultUpdatedAt = studentmodelDescUpdatedAt.Default.(func() time.Time)
	// studentmodel.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	studentmodel.UpdateDefaultUpdatedAt = studentmodelDescUpdatedAt.UpdateDefault.(func() time.Time)
	// studentmodelDescID is the schema descriptor for id field.
	studentmodelDescID := studentmodelFields[0].Descriptor()
	// studentmodel.DefaultID holds the default value on creation for the id field.
	studentmodel.DefaultID = studentmodelDescID.Default.(func() string)
	topicFields := schema.Topic{}.Fields()
	_ = topicFields
	// topicDescName is the schema descriptor for name field.
	topicDescName := topicFields[1].Descriptor()
	// topic.NameValidator is a validator for the "name" field. It is called by the builders before save.
	topic.NameValidator = topicDescName.Validators[0].(func(string) error)
	// topicDescDescription is the schema descriptor for description field.
	topicDescDescription := topicFields[2].Descriptor()
	// topic.DefaultDescription holds the default value on creation for the description field.
	topic.DefaultDescription = topicDescDescription.Default.(string)
	// topicDescID is the schema descriptor for id field.
	topicDescID := topicFields[0].Descriptor()
	// topic.IDValidator is a validator for the "id" field. It is called by the builders before save.
	topic.IDValidator = topicDescID.Validators[0].(func(string) error)
	topicprogressFields := schema.TopicProgress{}.Fields()
	_ = topicprogressFields
	// topicprogressDescUserID is the schema descriptor for user_id field.
	topicprogressDescUserID := topicprogressFields[1].Descriptor()
	// topicprogress.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	topicprogress.UserIDValidator = topicprogressDescUserID.Validators[0].(func(string) error)
	// topicprogressDescTopicID is the schema descriptor for topic_id field.
	topicprogressDescTopicID := topicprogressFields[2].Descriptor()
	// topicprogress.TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	topicprogress.TopicIDValidator = topicprogressDescTopicID.Validators[0].(func(string) error)
	// topicprogressDescStatus is the schema descriptor for status field.
	topicprogressDescStatus := topicprogressFields[3].Descriptor()
	// topicprogress.DefaultStatus holds the default value on creation for the status field.
	topicprogress.DefaultStatus = topicprogressDescStatus.Default.(string)
	// topicprogressDescAttempts is the schema descriptor for attempts field.
	topicprogressDescAttempts := topicprogressFields[5].Descriptor()
	// topicprogress.DefaultAttempts holds the default value on creation for the attempts field.
	topicprogress.DefaultAttempts = topicprogressDescAttempts.Default.(int)
	// topicprogressDescUpdatedAt is the schema descriptor for updated_at field.
	topicprogressDescUpdatedAt := topicprogressFields[6].Descriptor()
	// topicprogress.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	topicprogress.DefaultUpdatedAt = topicprogressDescUpdatedAt.Default.(func() time.Time)
	// topicprogress.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	topicprogress.UpdateDefaultUpdatedAt = topicprogressDescUpdatedAt.UpdateDefault.(func() time.Time)
	// topicprogressDescID is the schema descriptor for id field.
	topicprogressDescID := topicprogressFields[0].Descriptor()
	// topicprogress.DefaultID holds the default value on creation for the id field.
	topicprogress.DefaultID = topicprogressDescID.Default.(func() string)
}
