package repository

import "github.com/cognitiveflux/core/internal/domain/entities"

// DefaultArticles returns the built-in article library the service boots
// with. The collection is ordered most-recent-first, matching what Insert
// would have produced.
func DefaultArticles() []*entities.Article {
	return []*entities.Article{
		{
			ID:       "mindful-investing-ai",
			Title:    "The Zen of AI: Mindful Investing in the Digital Age",
			Author:   "Jane Doe",
			Date:     "2023-10-26",
			Category: "Mindful Finance",
			Tags:     []string{"AI", "Investing", "Mindfulness"},
			ImageURL: "https://picsum.photos/seed/zen-ai/800/400",
			Excerpt:  "Discover how to combine the ancient wisdom of mindfulness with cutting-edge AI to make calmer, more intelligent investment decisions.",
			Content: `## Finding Calm in Financial Chaos

The market is volatile, driven by algorithms and human emotion. Mindfulness provides the anchor, allowing you to observe without reacting. AI provides the data-driven insights, cutting through the noise.

### Three Core Principles

1.  **Observe, Don't Absorb**: Use AI tools to gather data, but apply mindful awareness before acting. Are you investing based on logic or fear?
2.  **Automate with Intention**: Set up automated investment plans based on your long-term goals, not on fleeting market trends.
3.  **Digital Detox for Your Portfolio**: Constant chart-watching creates anxiety. Schedule specific times to review your AI-driven reports and trust your system the rest of the time.
`,
		},
		{
			ID:       "cognitive-wealth-system",
			Title:    "Building Cognitive Wealth: Beyond the Bank Account",
			Author:   "John Smith",
			Date:     "2023-10-22",
			Category: "Personal Growth",
			Tags:     []string{"Wealth", "Mindset", "Growth"},
			ImageURL: "https://picsum.photos/seed/cognitive-wealth/800/400",
			Excerpt:  "True wealth isn't just about money; it's about mental clarity, focus, and resilience. Learn how to build a stronger mind to build a stronger life.",
			Content: `## The Ultimate Asset: Your Mind

Your ability to think clearly, solve problems, and stay resilient is your greatest asset. Financial success is often a byproduct of a well-managed mind.

### Pillars of Cognitive Wealth

*   **Radical Focus**: Eliminate distractions and dedicate deep work blocks to your most important tasks.
*   **Systematic Learning**: Actively acquire new skills, especially in high-leverage areas like AI, communication, and finance.
*   **Mindful Resilience**: Practice meditation and self-reflection to handle setbacks without derailing your progress. Failure is data, not a disaster.
`,
		},
		{
			ID:       "ai-powered-side-hustles",
			Title:    "Flow State Hustles: 3 AI-Powered Side Incomes",
			Author:   "Alex Ray",
			Date:     "2023-10-18",
			Category: "Side Hustles",
			Tags:     []string{"AI", "Side Hustle", "Flow State"},
			ImageURL: "https://picsum.photos/seed/flow-hustle/800/400",
			Excerpt:  "Leverage AI to create income streams that align with your passions and allow you to enter a state of deep, focused work, or \"flow.\"",
			Content: `## Work That Doesn't Feel Like Work

The best side hustles are those that tap into your natural interests. AI can handle the repetitive parts, leaving you with the creative, engaging work that leads to a state of flow.

1.  **AI-Assisted Artisan**: Use AI image generators for inspiration and marketing visuals for your craft, be it writing, art, or music.
2.  **Automated Curation**: Build a newsletter around a niche you love and let AI draft summaries you refine with your own voice.
3.  **Micro-Consulting**: Package what you already know into focused sessions, with AI handling scheduling, notes, and follow-ups.
`,
		},
	}
}
