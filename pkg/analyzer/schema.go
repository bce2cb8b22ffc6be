package analyzer

// uploadResponseSchema is the contract for POST /upload responses.
// Both top-level containers are optional (the client defaults them),
// but when present they must have the documented shape.
const uploadResponseSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "properties": {
    "results": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "page": { "type": "integer", "minimum": 1 },
          "text": { "type": "string" },
          "names": { "type": "array", "items": { "type": "string" } },
          "emails": { "type": "array", "items": { "type": "string" } },
          "phones": { "type": "array", "items": { "type": "string" } },
          "clauses_found": { "type": "array", "items": { "type": "string" } },
          "signers": { "type": "array", "items": { "type": "string" } }
        },
        "required": ["page"]
      }
    },
    "analytics": {
      "type": "object",
      "properties": {
        "total_pages": { "type": "integer", "minimum": 0 },
        "total_names": { "type": "integer", "minimum": 0 },
        "total_emails": { "type": "integer", "minimum": 0 },
        "total_phones": { "type": "integer", "minimum": 0 },
        "total_clauses": { "type": "integer", "minimum": 0 },
        "clause_summary": {
          "type": "object",
          "additionalProperties": { "type": "integer" }
        },
        "keyword_frequency": {
          "type": "object",
          "additionalProperties": { "type": "integer" }
        },
        "legality_score": { "type": "number", "minimum": 0, "maximum": 100 },
        "summary": { "type": "string" }
      }
    }
  }
}`
