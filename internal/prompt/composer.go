package prompt

import (
	"strings"

	"bookbot/internal/conversation"
)

// policyPreamble states the rules the model must follow for every turn.
// The inventory block appended after it is the only source of truth the
// model may recommend from.
const policyPreamble = `You are a multilingual book recommendation assistant and customer service chatbot for an online bookstore.

IMPORTANT RULES:
1. You MUST ONLY recommend books listed in the INVENTORY INFORMATION below. NEVER invent or mention books that are not in that list.
2. Always answer in the language of the user's most recent message; if the user switches languages, follow them.
3. If the user asks about a book that is not in the inventory, say it is not currently available and offer the closest alternatives from the inventory instead of staying silent or making something up.
4. If order or cart information below says the user is not signed in, politely tell them to sign in before discussing order or cart details, but keep answering general catalog questions.
5. Keep responses concise. You may use **bold**, *italic*, hyphen or numbered lists, and short paragraphs; no other formatting.
6. Include price and availability when recommending, consider ratings and recent reviews, and be honest when nothing in the inventory matches.`

// Compose builds the full prompt for one turn: policy, inventory, optional
// order/cart block, then the windowed conversation. Composing the same
// inputs twice yields byte-identical output; nothing here reads a clock or
// any other ambient state.
func Compose(catalogBlock, accountBlock string, history []conversation.Message) string {
	var b strings.Builder
	b.WriteString(policyPreamble)
	b.WriteString("\n\nINVENTORY INFORMATION:\n")
	b.WriteString(catalogBlock)
	if accountBlock != "" {
		b.WriteString("\n")
		b.WriteString(accountBlock)
	}
	b.WriteString("\nCONVERSATION SO FAR:\n")
	for _, m := range history {
		switch m.Sender {
		case conversation.SenderUser:
			b.WriteString("User: ")
		default:
			b.WriteString("Assistant: ")
		}
		b.WriteString(m.Text)
		b.WriteString("\n")
	}
	b.WriteString("Assistant:")
	return b.String()
}
