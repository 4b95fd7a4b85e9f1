// Package registry holds the static role and trait lookup tables. Everything
// that validates or translates a domain/cluster name goes through this
// package. The tables are fixed at compile time and never mutated at runtime.
package registry

// RoleToCollection maps a human-readable role name to the technical question
// collection it is assessed against.
var RoleToCollection = map[string]string{
	"Software Engineer / Developer":   "Engineering_Development_Software_engineer_or_developer",
	"Data Scientist":                  "Data_Science_Analytics_Data_scientist",
	"Data Analyst":                    "Data_Science_Analytics_Data_analyst",
	"Product Manager":                 "Product_Management_Product_manager",
	"Project Manager":                 "Operations_Management_Project_manager",
	"UX / UI Designer":                "Design_Creative_UX_UI_designer",
	"Digital Marketer":                "Marketing_Growth_Digital_marketer",
	"Sales / Business Development":    "Sales_Business_Business_development",
	"Financial Analyst":               "Finance_Accounting_Financial_analyst",
	"HR / People Operations":          "Human_Resources_People_operations",
	"DevOps / Cloud Engineer":         "Engineering_Development_DevOps_cloud_engineer",
	"QA / Test Engineer":              "Engineering_Development_QA_test_engineer",
	"System Administrator":            "IT_Support_System_administrator",
	"Business Analyst":                "Strategy_Consulting_Business_analyst",
	"Content Writer / Copywriter":     "Marketing_Growth_Content_writer",
	"Customer Success / Support":      "Operations_Management_Customer_success",
	"Machine Learning Engineer":       "Data_Science_Analytics_Machine_learning_engineer",
	"Cybersecurity Analyst":           "IT_Support_Cybersecurity_analyst",
	"Operations Manager":              "Operations_Management_Operations_manager",
	"Graphic Designer":                "Design_Creative_Graphic_designer",
}

// DefaultCollection receives questions for unmapped roles and the default
// distribution path.
const DefaultCollection = "General_Aptitude_Foundation"

// QualitativeClusters maps a short trait key to its cluster collection id.
var QualitativeClusters = map[string]string{
	"self_awareness": "Self_Awareness_And_Growth",
	"exploration":    "Exploration_And_Curiosity",
	"decision":       "Decision_Making_And_Clarity",
	"leadership":     "Leadership_And_Ownership",
	"collaboration":  "Collaboration_And_Communication",
	"adaptability":   "Adaptability_And_Resilience",
	"motivation":     "Motivation_And_Drive",
	"learning":       "Learning_Agility_And_Openness",
	"resilience":     "Stress_Tolerance_And_Composure",
}

// FallbackDomains is walked in order when the technical pool is still short
// after the planned fetches.
var FallbackDomains = []string{
	DefaultCollection,
	"Engineering_Development_Software_engineer_or_developer",
	"Data_Science_Analytics_Data_analyst",
	"Strategy_Consulting_Business_analyst",
}

// FallbackClusters is walked in order when the qualitative pool is short.
var FallbackClusters = []string{
	"Self_Awareness_And_Growth",
	"Motivation_And_Drive",
	"Collaboration_And_Communication",
	"Learning_Agility_And_Openness",
}

// CollectionForRole resolves a role name, falling back to the default
// collection for anything unmapped.
func CollectionForRole(role string) string {
	if col, ok := RoleToCollection[role]; ok {
		return col
	}
	return DefaultCollection
}

// IsValidCollection reports whether id names a known technical collection.
func IsValidCollection(id string) bool {
	if id == DefaultCollection {
		return true
	}
	for _, col := range RoleToCollection {
		if col == id {
			return true
		}
	}
	return false
}

// IsValidCluster reports whether id names a known qualitative cluster.
func IsValidCluster(id string) bool {
	for _, cluster := range QualitativeClusters {
		if cluster == id {
			return true
		}
	}
	return false
}

// TechnicalCollections returns every known technical collection id, default
// included. Order is not stable; callers that need determinism sort.
func TechnicalCollections() []string {
	ids := make([]string, 0, len(RoleToCollection)+1)
	for _, col := range RoleToCollection {
		ids = append(ids, col)
	}
	ids = append(ids, DefaultCollection)
	return ids
}

// ClusterIDs returns every known qualitative cluster id.
func ClusterIDs() []string {
	ids := make([]string, 0, len(QualitativeClusters))
	for _, cluster := range QualitativeClusters {
		ids = append(ids, cluster)
	}
	return ids
}
