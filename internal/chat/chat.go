// Package chat is the storefront's rule-based chat assistant: a keyword
// matcher over canned replies. Reply is a pure function of the message and the
// conversation state, so it needs no network, no model, and no server state.
package chat

import "strings"

// State carries the conversation context between turns. Clients echo it back
// with every message.
type State struct {
	Turns             int      `json:"turns"`
	AskedPrices       bool     `json:"asked_prices"`
	MentionedProducts []string `json:"mentioned_products"`
	ShowsInterest     bool     `json:"shows_interest"`
}

// Reply matches message against the rule cascade and returns the reply plus
// the updated state. Rules are ordered: the first match wins, and an
// unmatched message falls through to the generic tiers.
func Reply(message string, st State) (string, State) {
	m := strings.ToLower(message)
	next := st
	next.Turns++

	switch {
	case containsAny(m, "hello", "hi", "hey", "namaste"):
		if st.ShowsInterest {
			return "Welcome back! I just got some amazing new arrivals from Rajesh uncle - his latest marble work is stunning. What would you like to explore today?", next
		}
		return "Hey there! I'm Saad, your local Agra helper. I connect tourists with authentic artisan families - no tourist traps, just real craftsmanship at fair prices. What brings you to Agra?", next

	case containsAny(m, "taj mahal", "marble", "replica"):
		next.MentionedProducts = remember(next.MentionedProducts, "marble")
		next.ShowsInterest = true
		variants := []string{
			"The marble Taj Mahal replicas are my specialty! Rajesh uncle's family has been doing marble inlay for 3 generations. Each piece takes 4-6 days with traditional tools. Want to see the sizes available?",
			"Excellent taste! The marble Taj replicas are our crown jewels - museum-quality detail work. Prices start from Rs 2,500 vs Rs 8,000+ in tourist shops. Interested?",
			"Perfect choice! Each marble Taj piece comes with an authenticity certificate and the story of the artisan who made it. I can arrange viewing and delivery within 2 hours in Agra.",
		}
		// Turns comes from client JSON, so it can be anything.
		idx := st.Turns % len(variants)
		if idx < 0 {
			idx += len(variants)
		}
		return variants[idx], next

	case containsAny(m, "elephant", "wooden", "wood"):
		next.MentionedProducts = remember(next.MentionedProducts, "wood")
		next.ShowsInterest = true
		return "The wooden elephant pairs are gorgeous! Kumar ji carves each pair by hand with tools passed down generations. Rosewood ones are especially popular - Rs 1,800-3,200 vs Rs 6,000+ in markets. Want photos?", next

	case containsAny(m, "pashmina", "shawl", "wool"):
		next.MentionedProducts = remember(next.MentionedProducts, "textile")
		next.ShowsInterest = true
		return "Pashmina shawls! These are genuine Kashmir pashmina, sourced directly from verified weavers in Srinagar. Rs 2,800-4,500 vs Rs 10,000+ in hotel shops, each with authenticity verification.", next

	case containsAny(m, "price", "cost", "expensive", "cheap", "much"):
		if st.AskedPrices {
			return "I love that you're price-conscious! Taj replicas Rs 2,500-4,500, wooden elephants Rs 1,800-3,200, pashmina shawls Rs 2,800-4,500. All include hotel delivery and authenticity certificates.", next
		}
		next.AskedPrices = true
		return "Great question - complete transparency is the whole point. My prices are what locals pay plus a fair margin: marble coaster set Rs 1,500 (shops charge Rs 4,000), wooden elephant pair Rs 2,200 (shops charge Rs 6,000). What piece interests you?", next

	case containsAny(m, "whatsapp", "contact", "number", "phone"):
		return "My WhatsApp is +91-7417-99-4386, usually online 9 AM to 9 PM. I can send live photos, videos of the crafting process, and coordinate hotel delivery. Message anytime!", next

	case containsAny(m, "factory visit", "visit factory", "see factory", "workshop visit", "see artisans", "meet artisans"):
		return "Factory visits are free and very popular! You'll watch master artisans doing marble inlay by hand, 45-60 minutes, best between 10 AM and 4 PM. I'll arrange pickup from your hotel - just tell me the hotel and a time.", next

	case containsAny(m, "story", "about you", "yourself", "background", "mission"):
		return "I'm Saad, a BTech student at IIT Roorkee. I started Nayrana Handicrafts after watching tourists pay Rs 15,000 for marble pieces locals buy for Rs 3,000. So I partnered directly with master artisan families - factory-to-hotel delivery, zero middlemen, manufacturer prices.", next

	case containsAny(m, "trust", "verify", "authentic", "scam", "fake", "cheat", "overcharge"):
		return "Completely fair concern - Agra has a real scam problem. How to verify me: 89+ tourist reviews, hotel partnerships, pay only after you're satisfied, meet the actual artisans, and a free factory visit so you see the whole process yourself.", next

	case containsAny(m, "hotel", "delivery", "deliver", "staying"):
		return "Hotel delivery is my specialty! I deliver to all major Agra hotels, usually within 2-3 hours of confirmation, no extra charges, and you inspect everything before paying. Where are you staying?", next

	case containsAny(m, "thank", "great", "awesome", "amazing", "good"):
		return "You're so welcome! When travelers discover authentic Agra beyond the tourist circuit, that makes it all worthwhile. Anything specific you'd like to see?", next

	case containsAny(m, "buy", "purchase", "shop", "order"):
		next.ShowsInterest = true
		return "My process is simple: I show you photos and videos, arrange hotel viewing if you want, and you pay only after you're completely satisfied. Everything comes with an authenticity certificate. What type of handicraft interests you?", next

	case containsAny(m, "quality", "genuine", "original", "handmade"):
		return "Quality is everything here. I only work with artisans whose families have perfected their craft for generations - all handmade, traditional techniques, no shortcuts. Visit the factory and see for yourself, it's free.", next

	case isQuestion(m):
		return "Good question! Whether it's about handicrafts, Agra culture, or life as a student entrepreneur, happy to help. My specialty is connecting travelers with authentic artisan families - what interests you most?", next

	default:
		return "I'm here to help you find authentic Agra handicrafts at fair prices - marble inlay, carved wood, pashmina. Ask me about pieces, prices, or a free factory visit!", next
	}
}

func containsAny(m string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(m, kw) {
			return true
		}
	}
	return false
}

func isQuestion(m string) bool {
	if strings.Contains(m, "?") {
		return true
	}
	return containsAny(m, "what", "how", "why", "when", "where", "who", "which", "can", "could", "would", "should")
}

func remember(list []string, item string) []string {
	for _, existing := range list {
		if existing == item {
			return list
		}
	}
	return append(list, item)
}
