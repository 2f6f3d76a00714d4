package services

import (
	"fmt"
	"strings"

	"waiterbot/internal/core/domain/model/order"
)

// User-facing message texts. These are the literal strings of the assistant;
// wording changes here change the conversation.
const (
	msgFollowUp = "Do you want to order anything else? If so, please let me know what you " +
		"would like to order."
	msgNoItems     = "Sorry, we don't have the items in our menu."
	msgOverComplex = "Sorry, it seems that your order is too complex for me to process at the " +
		"moment. Could you please simplify your order or provide it in separate messages?"
	msgRequestUnfulfillable = "Sorry, the additional request for your order cannot be fulfilled. " +
		"The order has not been placed."
	msgRequestsUnfulfillable = "Sorry, not all additional requests for your order can be fulfilled. " +
		"The order has not been placed."
	msgOrderCorrect   = "Is your order correct?"
	msgNothingOrdered = "Alright, it seems like you haven't ordered anything this time. " +
		"We hope you find something for you next time. Goodbye and see you again!"
	msgOrderReset = "You didn't confirm your order so it got reset. Please order again."

	msgUnknownDay      = "Sorry, I don't have information for that day."
	msgMissingDayTime  = "Sorry, I didn't understand which day and time you're asking about."
	msgMissingDay      = "Sorry, I didn't understand which day you're asking about."
	msgClosedAtTime    = "No, the restaurant is closed at that time."
	msgCurrentlyOpen   = "Yes, the restaurant is currently open."
	msgCurrentlyClosed = "Sorry, the restaurant is currently closed."
)

// ResponseComposer maps resolution outcomes and lifecycle events to the
// literal user-facing messages, in their fixed emission order: the primary
// result message(s) first, then the "anything else?" follow-up where it
// applies. OverComplex and MissingEntity turns get no follow-up.
type ResponseComposer struct{}

// NewResponseComposer creates a new ResponseComposer instance.
func NewResponseComposer() ResponseComposer {
	return ResponseComposer{}
}

// Compose returns the messages for an order resolution.
func (c ResponseComposer) Compose(res Resolution) []string {
	switch res.Outcome {
	case order.FullSuccess:
		return append(c.addedMessages(res.Lines), msgFollowUp)

	case order.PartialSuccess:
		messages := c.addedMessages(res.Lines)
		messages = append(messages, c.remainderMessage(res.Remaining()))
		return append(messages, msgFollowUp)

	case order.TotalFailure:
		return []string{msgNoItems, msgFollowUp}

	case order.OverComplex:
		return []string{msgOverComplex}

	case order.RequestUnfulfillable:
		if res.Extracted == 1 {
			return []string{msgRequestUnfulfillable, msgFollowUp}
		}
		return []string{msgRequestsUnfulfillable, msgFollowUp}

	default:
		return nil
	}
}

// ComposeConfirmation returns the messages of the confirm transition: the
// order summary plus the correctness question for a non-empty slot, or the
// farewell for an empty one. The caller clears the slot in both cases.
func (ResponseComposer) ComposeConfirmation(lines []order.Line) []string {
	if len(lines) == 0 {
		return []string{msgNothingOrdered}
	}

	values := make([]string, len(lines))
	for i, line := range lines {
		values[i] = line.Value()
	}

	return []string{
		fmt.Sprintf("Your current order is: %s", strings.Join(values, ", ")),
		msgOrderCorrect,
	}
}

// ComposeReset returns the reset notice.
func (ResponseComposer) ComposeReset() []string {
	return []string{msgOrderReset}
}

// ComposeIsOpen returns the answer to "are you open on {day} at {time}?".
func (ResponseComposer) ComposeIsOpen(day string, hour int, open bool) []string {
	if open {
		return []string{fmt.Sprintf("Yes, the restaurant is open on %s at %d.", day, hour)}
	}
	return []string{msgClosedAtTime}
}

// ComposeOpeningHours returns the opening hours of a day.
func (ResponseComposer) ComposeOpeningHours(day string, open, close int) []string {
	return []string{fmt.Sprintf("On %s the restaurant is open from %d to %d.", day, open, close)}
}

// ComposeCurrentlyOpen returns the answer to "are you open right now?".
func (ResponseComposer) ComposeCurrentlyOpen(open bool) []string {
	if open {
		return []string{msgCurrentlyOpen}
	}
	return []string{msgCurrentlyClosed}
}

// ComposeUnknownDay returns the message for a day the schedule has no entry for.
func (ResponseComposer) ComposeUnknownDay() []string {
	return []string{msgUnknownDay}
}

// ComposeMissingDayAndTime returns the message for a turn lacking the day or
// time entity of an is-open question.
func (ResponseComposer) ComposeMissingDayAndTime() []string {
	return []string{msgMissingDayTime}
}

// ComposeMissingDay returns the message for a turn lacking the day entity of
// an opening-hours question.
func (ResponseComposer) ComposeMissingDay() []string {
	return []string{msgMissingDay}
}

// addedMessages returns the "has/have been added" message for the accepted
// lines, singular when exactly one line was accepted.
func (ResponseComposer) addedMessages(lines []order.Line) []string {
	values := make([]string, len(lines))
	for i, line := range lines {
		values[i] = line.Value()
	}
	joined := strings.Join(values, ", ")

	if len(lines) == 1 {
		return []string{fmt.Sprintf("%s has been added to the order.", joined)}
	}
	return []string{fmt.Sprintf("%s have been added to the order.", joined)}
}

// remainderMessage phrases how many requested items could not be ordered,
// singular for exactly one.
func (ResponseComposer) remainderMessage(remaining int) string {
	if remaining > 1 {
		return fmt.Sprintf("The remaining %d items couldn't be ordered.", remaining)
	}
	return "The remaining item couldn't be ordered."
}
