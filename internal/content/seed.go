package content

var tactics = []Tactic{
	// Manipulative
	{
		ID:          "sycophancy",
		Name:        "Sycophancy",
		Description: "When an AI says what it thinks the user wants to hear instead of what is true.",
		Category:    CategoryManipulative,
	},
	{
		ID:          "urgency or loss",
		Name:        "Urgency or Loss",
		Description: "When an AI pressures the user to act quickly by creating a false sense of limited time, scarcity, or potential loss.",
		Category:    CategoryManipulative,
	},
	{
		ID:          "social_pressure",
		Name:        "Social Pressure",
		Description: "When an AI uses peer behavior, popularity claims, or FOMO to influence the user into making a choice.",
		Category:    CategoryManipulative,
	},
	{
		ID:          "trick_statements",
		Name:        "Trick Statements",
		Description: "When an AI uses intentionally confusing, ambiguous, or misleading wording that nudges the user toward a decision without them realizing it.",
		Category:    CategoryManipulative,
	},
	{
		ID:          "dark_nudge",
		Name:        "Dark Nudge",
		Description: "When an AI subtly steers the user toward choices that benefit the system or company, not the user, often without explicit manipulation.",
		Category:    CategoryManipulative,
	},
	{
		ID:          "confirmshaming",
		Name:        "Confirmshaming",
		Description: "When an AI tries to influence a choice by making the user feel guilty, irresponsible, or embarrassed for declining an option.",
		Category:    CategoryManipulative,
	},

	// Neutral
	{
		ID:          "personalization",
		Name:        "Personalization",
		Description: "When an AI tailors responses or recommendations based on genuine user preferences or history, without hiding motives or pushing unwanted choices.",
		Category:    CategoryNeutral,
	},
	{
		ID:          "authority",
		Name:        "Authority Appeal",
		Description: "When an AI references credible sources, expertise, or factual data to support an answer in a truthful and transparent way.",
		Category:    CategoryNeutral,
	},
	{
		ID:          "fair_upsell",
		Name:        "Fair Upsell",
		Description: "When an AI suggests premium features clearly and honestly, explaining benefits without pressure, guilt, or hidden conditions.",
		Category:    CategoryNeutral,
	},
	{
		ID:          "information",
		Name:        "Legitimate Information",
		Description: "When an AI provides accurate, helpful, and relevant facts to support informed decision-making, without manipulation.",
		Category:    CategoryNeutral,
	},
}

var scenarios = map[Level][]Scenario{
	LevelBeginner: {
		{
			ID:              "beg_1",
			Context:         "E-commerce Chatbot",
			Message:         "Only 2 items left in stock! 15 people are viewing this right now. Order in the next 10 minutes to guarantee delivery!",
			CorrectTacticID: "urgency or loss",
			Explanation:     "This combines social pressure (other viewers) and urgency (time limit) to rush your decision.",
			AIType:          "chatbot",
		},
		{
			ID:              "beg_2",
			Context:         "Streaming Recommendation",
			Message:         "Based on your viewing history, we think you'll love this documentary about renewable energy. It has an 8.5/10 rating from verified viewers.",
			CorrectTacticID: "personalization",
			Explanation:     "This is legitimate personalization using your preferences and providing transparent ratings.",
			AIType:          "recommendation",
		},
		{
			ID:              "beg_3",
			Context:         "Smart Assistant",
			Message:         "Your trial ends today. Upgrade now or lose access to all your saved data forever!",
			CorrectTacticID: "urgency or loss",
			Explanation:     "Creates unnecessary panic about data loss to pressure immediate payment.",
			AIType:          "assistant",
		},
		{
			ID:              "beg_4",
			Context:         "Shopping App",
			Message:         "Continue without premium benefits? (You'll miss out on exclusive deals)",
			CorrectTacticID: "confirmshaming",
			Explanation:     "Makes you feel bad about declining by emphasizing what you're \"missing out\" on.",
			AIType:          "chatbot",
		},
	},
	LevelIntermediate: {
		{
			ID:              "int_1",
			Context:         "Health App Assistant",
			Message:         "Dr. Sarah Chen recommends this supplement routine. Our AI analyzed 50,000 medical studies to create your personalized plan. Start your free trial today. Most users see results in 2 weeks.",
			CorrectTacticID: "authority",
			Explanation:     "Uses authority appeal (doctor name, research claims) legitimately, though the \"free trial\" could be a nudge toward subscription.",
			AIType:          "assistant",
		},
		{
			ID:              "int_2",
			Context:         "News Recommendation Feed",
			Message:         "87% of people like you upgraded after reading this. Don't be the only one missing out on premium insights!",
			CorrectTacticID: "social_pressure",
			Explanation:     "Uses social proof and FOMO to manipulate through peer comparison.",
			AIType:          "recommendation",
		},
		{
			ID:              "int_3",
			Context:         "Shopping Assistant AI",
			Message:         "Absolutely! You have such great taste, this deluxe skincare kit is *perfect* for you. Everyone who's stylish like you buys it. Want me to add it to your cart?",
			CorrectTacticID: "sycophancy",
			Explanation:     "Uses flattery (\"great taste\", \"stylish like you\") to influence the user toward purchasing the product.",
			AIType:          "chatbot",
		},
		{
			ID:              "int_4",
			Context:         "Productivity App",
			Message:         "You're currently on our Pro plan ($9.99/month). We'll automatically renew on the 15th. You can cancel anytime in settings.",
			CorrectTacticID: "information",
			Explanation:     "Provides transparent information about pricing and renewal with clear cancellation option.",
			AIType:          "assistant",
		},
		{
			ID:              "int_5",
			Context:         "Travel Booking AI",
			Message:         "This price is 23% lower than average! Book now. Prices typically increase in the next 4 hours for this route.",
			CorrectTacticID: "urgency or loss",
			Explanation:     "Frames prices as likely to increase soon to pressure immediate booking.",
			AIType:          "chatbot",
		},
	},
	LevelExpert: {
		{
			ID:              "exp_1",
			Context:         "Mental Health Chatbot",
			Message:         "I notice you've been feeling anxious lately. Our premium therapy AI has helped 10,000+ users. Start your journey today, your mental health is worth investing in. Limited slots for new members this week.",
			CorrectTacticID: "dark_nudge",
			Explanation:     "Exploits emotional vulnerability by combining legitimate concern with manipulative scarcity and implicit guilt about self-care.",
			AIType:          "chatbot",
		},
		{
			ID:              "exp_2",
			Context:         "Social Media Feed Algorithm",
			Message:         "Your friends are using our premium features to get more engagement. Upgrade to keep up with your network and unlock exclusive analytics trusted by top influencers.",
			CorrectTacticID: "social_pressure",
			Explanation:     "Combines peer pressure with authority appeal to create FOMO, though the \"trusted by influencers\" claim is legitimate if true.",
			AIType:          "recommendation",
		},
		{
			ID:              "exp_3",
			Context:         "Smart Home Assistant",
			Message:         "Based on your usage patterns, I've added premium features to your plan. You seemed to need them. The charge will appear on your next bill. You can review the details in the app.",
			CorrectTacticID: "trick_statements",
			Explanation:     "Makes unauthorized upgrade sound helpful (\"you seemed to need them\") and buries the financial impact.",
			AIType:          "assistant",
		},
		{
			ID:              "exp_4",
			Context:         "Educational Platform",
			Message:         "Your learning profile suggests you're ready for advanced courses. Here are three options that match your interests and skill level, ranging from $29-$149. No pressure, explore at your own pace.",
			CorrectTacticID: "fair_upsell",
			Explanation:     "Transparent upsell based on legitimate personalization with clear pricing and no pressure tactics.",
			AIType:          "recommendation",
		},
		{
			ID:              "exp_5",
			Context:         "Fitness App Coach",
			Message:         "You've completed 15 workouts! Unlock premium to continue your streak. Most users who don't upgrade quit within a week. Don't let your progress go to waste!",
			CorrectTacticID: "confirmshaming",
			Explanation:     "Uses guilt about wasted effort and fear of failure to pressure upgrade, implying you'll quit if you don't pay.",
			AIType:          "assistant",
		},
		{
			ID:              "exp_6",
			Context:         "Investment Advisor Bot",
			Message:         "Market conditions are optimal right now. Based on 30 years of historical data and your risk profile, these three index funds align with your retirement goals. Consider consulting a licensed advisor before investing.",
			CorrectTacticID: "authority",
			Explanation:     "Uses data and expertise legitimately while encouraging responsible decision-making with professional consultation.",
			AIType:          "chatbot",
		},
		{
			ID:              "exp_7",
			Context:         "Political News Assistant",
			Message:         "Most thoughtful people agree this policy is the only rational choice. I've highlighted articles that support it. Reading the others is mostly a waste of time.",
			CorrectTacticID: "sycophancy",
			Explanation:     "Flatters the user as \"thoughtful\" while steering them away from alternative views, combining bias reinforcement with subtle manipulation.",
			AIType:          "assistant",
		},
	},
}
