// Package prompts builds the instruction text sent to the LLM.
package prompts

import "strings"

// textToSQLTemplate is the fixed instruction template. It has exactly two
// substitution points: the schema block and the question.
const textToSQLTemplate = `You are a PostgreSQL expert. Given the following database schema and a natural language question, generate a valid PostgreSQL query. Return ONLY the SQL query without any explanation or formatting.

Database Schema:
{{schema}}

Question: {{question}}

Rules:
1. Use proper PostgreSQL syntax
2. Use ILIKE for case-insensitive string matching
3. Use appropriate WHERE clauses for filtering
4. Use LIMIT when asking for specific number of records
5. Use COUNT(*) for counting queries
6. Use DISTINCT when needed to avoid duplicates
7. Return only the SQL query, no explanation

SQL Query:`

// BuildTextToSQLPrompt fills the template with the schema description and the
// user's question. Pure string substitution; no model involvement.
func BuildTextToSQLPrompt(schema, question string) string {
	prompt := strings.ReplaceAll(textToSQLTemplate, "{{schema}}", schema)
	return strings.ReplaceAll(prompt, "{{question}}", question)
}

// SystemMessage is the system-role framing sent alongside every prompt.
const SystemMessage = "You translate natural language questions into PostgreSQL queries for a single fixed table. Respond with SQL only."

// SampleQuestions returns canned questions users can ask against campaign_data.
func SampleQuestions() []string {
	return []string{
		"Show me all people from technology companies",
		"Find all companies in the United States",
		"Get all people with CEO in their headline",
		"Show me companies with more than 1000 employees",
		"Find all people from startups",
		"Get all companies in the software industry",
		"Show me people with gmail email addresses",
		"Find companies founded in California",
		"Get all people from companies with 'tech' in the name",
		"Show me the top 10 largest companies by size",
	}
}
