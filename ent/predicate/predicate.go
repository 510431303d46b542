// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Agent is the predicate function for agent builders.
type Agent func(*sql.Selector)

// Conversation is the predicate function for conversation builders.
type Conversation func(*sql.Selector)

// ConversationEvent is the predicate function for conversationevent builders.
type ConversationEvent func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// Message is the predicate function for message builders.
type Message func(*sql.Selector)

// RoutingRule is the predicate function for routingrule builders.
type RoutingRule func(*sql.Selector)

// Squad is the predicate function for squad builders.
type Squad func(*sql.Selector)

// SquadTemplate is the predicate function for squadtemplate builders.
type SquadTemplate func(*sql.Selector)

// Watermark is the predicate function for watermark builders.
type Watermark func(*sql.Selector)
