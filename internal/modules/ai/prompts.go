package ai

import "fmt"

const marketingSystemPrompt = "You are an expert social media marketing specialist. Create engaging, platform-optimized social media content that drives engagement and conversions."

func buildPostsPrompt(brandName, topic, brandVoice, platform, userContent string) string {
	if userContent == "" {
		userContent = "No specific content provided"
	}
	return fmt.Sprintf(`
Create 3 social media post variations for %s targeting %s.

TOPIC: %s
BRAND VOICE: %s
PLATFORM: %s
USER CONTENT: %s

Requirements:
- Create 3 distinct variations with different angles
- Include relevant hashtags (5-8 per variation)
- Optimize for %s best practices
- Tone should be %s
- Include engagement hooks (questions, CTAs)
- Provide estimated engagement score (1-100)
- Add brief explanation for each variation

Format your response as JSON:
{
    "posts": [
        {
            "content": "full post text",
            "engagement_score": 85,
            "tone": "specific tone",
            "hashtags": ["hashtag1", "hashtag2"],
            "explanation": "why this will perform well"
        }
    ],
    "insights": "overall strategic insights",
    "recommendations": ["recommendation1", "recommendation2"]
}
`, brandName, platform, topic, brandVoice, platform, userContent, platform, brandVoice)
}

func buildHashtagsPrompt(topic, platform, industry string) string {
	if industry == "" {
		industry = "general"
	}
	return fmt.Sprintf(`
Generate trending and relevant hashtags for %s on %s.

TOPIC: %s
PLATFORM: %s
INDUSTRY: %s

Requirements:
- Provide 15-20 relevant hashtags
- Include a mix of popular (high-volume) and niche (specific) hashtags
- Categorize them by purpose
- Include platform-specific best practices for %s
- Provide usage tips and strategy

Format your response as JSON:
{
    "hashtags": {
        "popular": ["#trending1", "#trending2"],
        "niche": ["#niche1", "#niche2"],
        "branded": ["#brand1", "#brand2"]
    },
    "strategy": "brief strategy explanation",
    "best_practices": ["practice1", "practice2"],
    "recommended_count": 5-8,
    "platform_specific_tips": "tips for %s"
}
`, topic, platform, topic, platform, industry, platform, platform)
}

func buildAnalyzePrompt(content, platform, targetAudience string) string {
	return fmt.Sprintf(`
Analyze this social media post for performance potential:

POST: %s
PLATFORM: %s
TARGET AUDIENCE: %s

Provide analysis in JSON format:
{
    "engagement_score": 0-100,
    "readability_score": 0-100,
    "strengths": ["strength1", "strength2"],
    "improvements": ["improvement1", "improvement2"],
    "predicted_metrics": {
        "estimated_reach": "number",
        "engagement_rate": "percentage",
        "virality_potential": "low/medium/high"
    }
}
`, content, platform, targetAudience)
}
