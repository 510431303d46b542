// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/squadflow/squadflow/ent/agent"
	"github.com/squadflow/squadflow/ent/conversation"
	"github.com/squadflow/squadflow/ent/conversationevent"
	"github.com/squadflow/squadflow/ent/event"
	"github.com/squadflow/squadflow/ent/message"
	"github.com/squadflow/squadflow/ent/routingrule"
	"github.com/squadflow/squadflow/ent/schema"
	"github.com/squadflow/squadflow/ent/squad"
	"github.com/squadflow/squadflow/ent/squadtemplate"
	"github.com/squadflow/squadflow/ent/watermark"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentFields := schema.Agent{}.Fields()
	_ = agentFields
	// agentDescSpecialization is the schema descriptor for specialization field.
	agentDescSpecialization := agentFields[3].Descriptor()
	// agent.DefaultSpecialization holds the default value on creation for the specialization field.
	agent.DefaultSpecialization = agentDescSpecialization.Default.(string)
	// agentDescActive is the schema descriptor for active field.
	agentDescActive := agentFields[7].Descriptor()
	// agent.DefaultActive holds the default value on creation for the active field.
	agent.DefaultActive = agentDescActive.Default.(bool)
	// agentDescCreatedAt is the schema descriptor for created_at field.
	agentDescCreatedAt := agentFields[8].Descriptor()
	// agent.DefaultCreatedAt holds the default value on creation for the created_at field.
	agent.DefaultCreatedAt = agentDescCreatedAt.Default.(func() time.Time)
	conversationFields := schema.Conversation{}.Fields()
	_ = conversationFields
	// conversationDescEscalationLevel is the schema descriptor for escalation_level field.
	conversationDescEscalationLevel := conversationFields[6].Descriptor()
	// conversation.DefaultEscalationLevel holds the default value on creation for the escalation_level field.
	conversation.DefaultEscalationLevel = conversationDescEscalationLevel.Default.(int)
	// conversation.EscalationLevelValidator is a validator for the "escalation_level" field. It is called by the builders before save.
	conversation.EscalationLevelValidator = conversationDescEscalationLevel.Validators[0].(func(int) error)
	// conversationDescCreatedAt is the schema descriptor for created_at field.
	conversationDescCreatedAt := conversationFields[9].Descriptor()
	// conversation.DefaultCreatedAt holds the default value on creation for the created_at field.
	conversation.DefaultCreatedAt = conversationDescCreatedAt.Default.(func() time.Time)
	// conversationDescUpdatedAt is the schema descriptor for updated_at field.
	conversationDescUpdatedAt := conversationFields[10].Descriptor()
	// conversation.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	conversation.DefaultUpdatedAt = conversationDescUpdatedAt.Default.(func() time.Time)
	// conversation.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	conversation.UpdateDefaultUpdatedAt = conversationDescUpdatedAt.UpdateDefault.(func() time.Time)
	conversationeventFields := schema.ConversationEvent{}.Fields()
	_ = conversationeventFields
	// conversationeventDescOccurredAt is the schema descriptor for occurred_at field.
	conversationeventDescOccurredAt := conversationeventFields[6].Descriptor()
	// conversationevent.DefaultOccurredAt holds the default value on creation for the occurred_at field.
	conversationevent.DefaultOccurredAt = conversationeventDescOccurredAt.Default.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[3].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	messageFields := schema.Message{}.Fields()
	_ = messageFields
	// messageDescCreatedAt is the schema descriptor for created_at field.
	messageDescCreatedAt := messageFields[8].Descriptor()
	// message.DefaultCreatedAt holds the default value on creation for the created_at field.
	message.DefaultCreatedAt = messageDescCreatedAt.Default.(func() time.Time)
	routingruleFields := schema.RoutingRule{}.Fields()
	_ = routingruleFields
	// routingruleDescQuestionType is the schema descriptor for question_type field.
	routingruleDescQuestionType := routingruleFields[3].Descriptor()
	// routingrule.DefaultQuestionType holds the default value on creation for the question_type field.
	routingrule.DefaultQuestionType = routingruleDescQuestionType.Default.(string)
	// routingruleDescEscalationLevel is the schema descriptor for escalation_level field.
	routingruleDescEscalationLevel := routingruleFields[4].Descriptor()
	// routingrule.DefaultEscalationLevel holds the default value on creation for the escalation_level field.
	routingrule.DefaultEscalationLevel = routingruleDescEscalationLevel.Default.(int)
	// routingrule.EscalationLevelValidator is a validator for the "escalation_level" field. It is called by the builders before save.
	routingrule.EscalationLevelValidator = routingruleDescEscalationLevel.Validators[0].(func(int) error)
	// routingruleDescPriority is the schema descriptor for priority field.
	routingruleDescPriority := routingruleFields[6].Descriptor()
	// routingrule.DefaultPriority holds the default value on creation for the priority field.
	routingrule.DefaultPriority = routingruleDescPriority.Default.(int)
	// routingruleDescActive is the schema descriptor for active field.
	routingruleDescActive := routingruleFields[7].Descriptor()
	// routingrule.DefaultActive holds the default value on creation for the active field.
	routingrule.DefaultActive = routingruleDescActive.Default.(bool)
	// routingruleDescCreatedAt is the schema descriptor for created_at field.
	routingruleDescCreatedAt := routingruleFields[8].Descriptor()
	// routingrule.DefaultCreatedAt holds the default value on creation for the created_at field.
	routingrule.DefaultCreatedAt = routingruleDescCreatedAt.Default.(func() time.Time)
	squadFields := schema.Squad{}.Fields()
	_ = squadFields
	// squadDescActive is the schema descriptor for active field.
	squadDescActive := squadFields[4].Descriptor()
	// squad.DefaultActive holds the default value on creation for the active field.
	squad.DefaultActive = squadDescActive.Default.(bool)
	// squadDescCreatedAt is the schema descriptor for created_at field.
	squadDescCreatedAt := squadFields[5].Descriptor()
	// squad.DefaultCreatedAt holds the default value on creation for the created_at field.
	squad.DefaultCreatedAt = squadDescCreatedAt.Default.(func() time.Time)
	squadtemplateFields := schema.SquadTemplate{}.Fields()
	_ = squadtemplateFields
	// squadtemplateDescCreatedAt is the schema descriptor for created_at field.
	squadtemplateDescCreatedAt := squadtemplateFields[7].Descriptor()
	// squadtemplate.DefaultCreatedAt holds the default value on creation for the created_at field.
	squadtemplate.DefaultCreatedAt = squadtemplateDescCreatedAt.Default.(func() time.Time)
	// squadtemplateDescUpdatedAt is the schema descriptor for updated_at field.
	squadtemplateDescUpdatedAt := squadtemplateFields[8].Descriptor()
	// squadtemplate.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	squadtemplate.DefaultUpdatedAt = squadtemplateDescUpdatedAt.Default.(func() time.Time)
	// squadtemplate.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	squadtemplate.UpdateDefaultUpdatedAt = squadtemplateDescUpdatedAt.UpdateDefault.(func() time.Time)
	watermarkFields := schema.Watermark{}.Fields()
	_ = watermarkFields
	// watermarkDescSequence is the schema descriptor for sequence field.
	watermarkDescSequence := watermarkFields[2].Descriptor()
	// watermark.DefaultSequence holds the default value on creation for the sequence field.
	watermark.DefaultSequence = watermarkDescSequence.Default.(int)
	// watermark.SequenceValidator is a validator for the "sequence" field. It is called by the builders before save.
	watermark.SequenceValidator = watermarkDescSequence.Validators[0].(func(int) error)
	// watermarkDescUpdatedAt is the schema descriptor for updated_at field.
	watermarkDescUpdatedAt := watermarkFields[3].Descriptor()
	// watermark.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	watermark.DefaultUpdatedAt = watermarkDescUpdatedAt.Default.(func() time.Time)
	// watermark.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	watermark.UpdateDefaultUpdatedAt = watermarkDescUpdatedAt.UpdateDefault.(func() time.Time)
}
