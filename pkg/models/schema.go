package models

import (
	"fmt"
	"strings"
)

// Column describes a single column of the campaign_data table for prompting.
type Column struct {
	Name        string
	DataType    string
	Description string
}

// SchemaDescriptor is a static description of one table's columns.
// It is constructed once at startup and never mutated; the rendered text is
// embedded verbatim in every generation prompt.
type SchemaDescriptor struct {
	TableName string
	Columns   []Column

	rendered string
}

// NewSchemaDescriptor builds a descriptor and pre-renders its prompt block.
func NewSchemaDescriptor(tableName string, columns []Column) *SchemaDescriptor {
	s := &SchemaDescriptor{
		TableName: tableName,
		Columns:   columns,
	}
	s.rendered = s.render()
	return s
}

// Describe returns the schema as a formatted text block for the prompt.
func (s *SchemaDescriptor) Describe() string {
	return s.rendered
}

func (s *SchemaDescriptor) render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Table: %s\n", s.TableName)
	b.WriteString("Columns:\n")
	for _, col := range s.Columns {
		fmt.Fprintf(&b, "- %s (%s): %s\n", col.Name, col.DataType, col.Description)
	}
	return b.String()
}

// CampaignDataSchema returns the descriptor for the campaign_data table.
// The column set mirrors the loader's DDL exactly.
func CampaignDataSchema() *SchemaDescriptor {
	return NewSchemaDescriptor("campaign_data", []Column{
		{Name: "query", DataType: "TEXT", Description: "Search query used"},
		{Name: "person_first_name", DataType: "TEXT", Description: "Person's first name"},
		{Name: "person_last_name", DataType: "TEXT", Description: "Person's last name"},
		{Name: "person_headline", DataType: "TEXT", Description: "Person's professional headline"},
		{Name: "person_business_email", DataType: "TEXT", Description: "Person's business email"},
		{Name: "person_personal_email", DataType: "TEXT", Description: "Person's personal email"},
		{Name: "person_linkedin_url", DataType: "TEXT", Description: "Person's LinkedIn profile URL"},
		{Name: "company_name", DataType: "TEXT", Description: "Company name"},
		{Name: "company_size", DataType: "TEXT", Description: "Company size"},
		{Name: "company_type", DataType: "TEXT", Description: "Type of company"},
		{Name: "company_country", DataType: "TEXT", Description: "Company country"},
		{Name: "company_industry", DataType: "TEXT", Description: "Company industry"},
		{Name: "company_linkedin_url", DataType: "TEXT", Description: "Company LinkedIn URL"},
		{Name: "company_meta_title", DataType: "TEXT", Description: "Company meta title"},
		{Name: "company_meta_description", DataType: "TEXT", Description: "Company meta description"},
		{Name: "company_meta_keywords", DataType: "TEXT", Description: "Company meta keywords"},
	})
}
