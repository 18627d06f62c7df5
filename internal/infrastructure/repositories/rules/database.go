package rules

import (
	"github.com/rios0rios0/aidep/internal/domain/entities"
)

// conflictDatabase is the curated list of known AI-framework conflicts,
// collected from upstream issue trackers and community reports. Order
// matters: evaluation results follow this order.
var conflictDatabase = []entities.ConflictRule{
	{
		ID:       "langchain-llama-sqlalchemy",
		Packages: []string{"langchain", "llama-index"},
		Description: "LangChain >=0.0.200 requires SQLAlchemy >=2.0, " +
			"but LlamaIndex <0.8 requires SQLAlchemy >=1.4,<2.0",
		Severity: entities.SeverityCritical,
		WorkingVersions: map[string]string{
			"langchain":   "==0.0.198",
			"llama-index": "==0.7.5",
		},
		Alternative: map[string]string{
			"langchain":   ">=0.1.0",
			"llama-index": ">=0.8.0",
		},
		Fix: "pip install langchain==0.0.198 llama-index==0.7.5\n" +
			"OR upgrade both:\n" +
			"pip install langchain>=0.1.0 llama-index>=0.8.0",
		Tip: "Pin both packages explicitly to keep pip from backtracking through broken combinations.",
	},
	{
		ID:       "langchain-community-langsmith",
		Packages: []string{"langchain", "langchain-community"},
		Description: "LangChain 0.1.6 depends on langsmith<0.1, " +
			"but langchain-community 0.0.28+ depends on langsmith>=0.1.0",
		Severity: entities.SeverityCritical,
		WorkingVersions: map[string]string{
			"langchain":           "==0.1.7",
			"langchain-community": "==0.0.28",
		},
		Fix: "pip install langchain==0.1.7 langchain-community==0.0.28",
	},
	{
		ID:       "llama-index-langchain-version",
		Packages: []string{"llama-index", "langchain"},
		Description: "LlamaIndex 0.5.x pins langchain==0.0.142, " +
			"conflicts with newer LangChain versions",
		Severity: entities.SeverityCritical,
		WorkingVersions: map[string]string{
			"llama-index": "==0.5.27",
			"langchain":   "==0.0.142",
		},
		Alternative: map[string]string{
			"llama-index": ">=0.6.0",
			"langchain":   ">=0.0.154",
		},
		Fix: "pip install llama-index==0.5.27 langchain==0.0.142\n" +
			"OR upgrade both:\n" +
			"pip install llama-index>=0.6.8 langchain>=0.0.154",
	},
	{
		ID:       "openai-langchain-breaking",
		Packages: []string{"openai", "langchain"},
		Description: "OpenAI SDK 1.0+ has breaking API changes, " +
			"older LangChain versions incompatible",
		Severity: entities.SeverityHigh,
		WorkingVersions: map[string]string{
			"openai":    "==0.28.1",
			"langchain": "==0.0.330",
		},
		Alternative: map[string]string{
			"openai":    ">=1.0.0",
			"langchain": ">=0.1.0",
		},
		Fix: "pip install openai==0.28.1 langchain==0.0.330\n" +
			"OR upgrade both:\n" +
			"pip install openai>=1.0.0 langchain>=0.1.0",
		Tip: "The OpenAI SDK migration guide covers the 0.x to 1.x API changes.",
	},
	{
		ID:       "llama-index-openai-version",
		Packages: []string{"llama-index", "openai"},
		Description: "LlamaIndex <0.9.0 requires openai<1.0, " +
			"breaks with OpenAI 1.0+",
		Severity: entities.SeverityHigh,
		WorkingVersions: map[string]string{
			"llama-index": "==0.8.69",
			"openai":      "==0.28.1",
		},
		Alternative: map[string]string{
			"llama-index": ">=0.9.0",
			"openai":      ">=1.0.0",
		},
		Fix: "pip install llama-index==0.8.69 openai==0.28.1\n" +
			"OR upgrade both:\n" +
			"pip install llama-index>=0.9.0 openai>=1.0.0",
	},
	{
		ID:       "crewai-llama-embedchain",
		Packages: []string{"crewai", "llama-index"},
		Description: "CrewAI 0.121+ introduces transitive dependency on embedchain, " +
			"conflicts with llama-index 0.10.x",
		Severity: entities.SeverityHigh,
		WorkingVersions: map[string]string{
			"crewai":      "==0.100.1",
			"llama-index": "==0.10.51",
		},
		Alternative: map[string]string{
			"crewai":      ">=0.121.0",
			"llama-index": ">=0.12.38",
		},
		Fix: "pip install crewai==0.100.1 llama-index==0.10.51\n" +
			"OR upgrade both:\n" +
			"pip install crewai>=0.121.0 llama-index>=0.12.38",
	},
	{
		ID:       "langchain-openai-separate-package",
		Packages: []string{"langchain", "openai"},
		Description: "LangChain 0.2+ moved OpenAI integration to " +
			"separate langchain-openai package",
		Severity: entities.SeverityMedium,
		WorkingVersions: map[string]string{
			"langchain":        ">=0.2.0",
			"langchain-openai": ">=0.1.0",
			"openai":           ">=1.0.0",
		},
		Fix: "pip install langchain>=0.2.0 langchain-openai>=0.1.0 openai>=1.0.0",
	},
	{
		ID:       "pydantic-v2-breaking",
		Packages: []string{"pydantic", "langchain", "llama-index"},
		Description: "Pydantic V2 (2.0+) has breaking changes, " +
			"many AI frameworks not compatible",
		Severity: entities.SeverityHigh,
		WorkingVersions: map[string]string{
			"pydantic":    "==1.10.13",
			"langchain":   "==0.0.330",
			"llama-index": "==0.8.69",
		},
		Alternative: map[string]string{
			"pydantic":    ">=2.0.0",
			"langchain":   ">=0.1.0",
			"llama-index": ">=0.9.0",
		},
		Fix: "pip install pydantic==1.10.13 langchain==0.0.330 llama-index==0.8.69\n" +
			"OR upgrade all:\n" +
			"pip install pydantic>=2.0.0 langchain>=0.1.0 llama-index>=0.9.0",
	},
	{
		ID:       "numpy-scipy-torch-version",
		Packages: []string{"numpy", "torch", "transformers"},
		Description: "PyTorch and Transformers have specific " +
			"NumPy version requirements",
		Severity: entities.SeverityMedium,
		WorkingVersions: map[string]string{
			"numpy":        ">=1.21.0,<2.0.0",
			"torch":        ">=2.0.0",
			"transformers": ">=4.30.0",
		},
		Fix: "pip install 'numpy>=1.21.0,<2.0.0' torch>=2.0.0 transformers>=4.30.0",
	},
	{
		ID:       "langflow-llama-sqlalchemy",
		Packages: []string{"langflow", "llama-index"},
		Description: "Langflow depends on SQLAlchemy 1.4.x, " +
			"LlamaIndex 0.7.5+ needs SQLAlchemy >=2.0.15",
		Severity: entities.SeverityCritical,
		WorkingVersions: map[string]string{
			"langflow":    "==0.5.0",
			"llama-index": "==0.7.4",
		},
		Fix: "pip install langflow==0.5.0 'llama-index<0.7.5'",
	},
}

// compatibilityMatrix is the range-keyed compatibility table for the common
// frameworks. Buckets are ordered; lookup takes the first matching range.
var compatibilityMatrix = entities.CompatibilityTable{
	"langchain": {
		{Range: "0.0.142", Compatible: map[string][]string{
			"llama-index": {"0.5.x"},
			"openai":      {"0.27.x", "0.28.x"},
		}},
		{Range: "0.0.330", Compatible: map[string][]string{
			"openai":   {"0.28.x"},
			"pydantic": {"1.10.x"},
		}},
		{Range: "0.1.0+", Compatible: map[string][]string{
			"openai":           {"1.0+"},
			"langchain-openai": {"0.1.0+"},
			"pydantic":         {"2.0+"},
		}},
		{Range: "0.2.0+", Compatible: map[string][]string{
			"langchain-openai":    {"required"},
			"langchain-community": {"0.2.0+"},
		}},
	},
	"llama-index": {
		{Range: "0.5.x", Compatible: map[string][]string{
			"langchain":  {"0.0.142"},
			"sqlalchemy": {"1.4.x"},
		}},
		{Range: "0.6.x-0.7.x", Compatible: map[string][]string{
			"langchain":  {">=0.0.154"},
			"sqlalchemy": {"1.4.x"},
		}},
		{Range: "0.8.0+", Compatible: map[string][]string{
			"sqlalchemy": {">=2.0"},
			"openai":     {"0.28.x"},
		}},
		{Range: "0.9.0+", Compatible: map[string][]string{
			"openai":   {"1.0+"},
			"pydantic": {"2.0+"},
		}},
	},
	"openai": {
		{Range: "0.28.x", Compatible: map[string][]string{
			"langchain":   {"<0.1.0"},
			"llama-index": {"<0.9.0"},
		}},
		{Range: "1.0+", Compatible: map[string][]string{
			"langchain":   {">=0.1.0"},
			"llama-index": {">=0.9.0"},
		}},
	},
}

// packageRenames records upstream package splits and renames surfaced by
// the suggest command.
var packageRenames = map[string]entities.PackageRename{
	"openai": {
		BreakingVersion: "1.0.0",
		MigrationGuide:  "https://github.com/openai/openai-python/discussions/742",
	},
	"langchain": {
		BreakingVersion: "0.2.0",
		SplitPackages:   []string{"langchain-core", "langchain-community", "langchain-openai"},
		MigrationGuide:  "https://python.langchain.com/docs/versions/v0_2/",
	},
}
