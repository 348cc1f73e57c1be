package storage

import (
	"context"
	"time"

	"evidence-vault/internal/domain"
)

// Seed loads the demo dataset into fresh stores. The data is hardcoded and
// reloaded on every process start; nothing survives a restart.
func Seed(es *InMemoryEvidenceStore, rs *InMemoryRequestStore) {
	ctx := context.Background()
	for _, ev := range SeedEvidence() {
		_ = es.Add(ctx, ev)
	}
	for _, req := range SeedRequests() {
		_ = rs.Add(ctx, req)
	}
}

// SeedEvidence returns the demo evidence records, newest version first within
// each record. Exported so tests can build stores from the same dataset.
func SeedEvidence() []domain.Evidence {
	return []domain.Evidence{
		{
			ID:          "ev-001",
			Name:        "ISO 27001:2022 Certificate",
			DocType:     "ISO 27001 Certificate",
			Status:      domain.EvidenceStatusApproved,
			ExpiryDate:  datePtr("2025-12-15"),
			LastUpdated: date("2024-01-10"),
			Description: "Information security management system certification issued by BSI Group.",
			Versions: []domain.EvidenceVersion{
				{
					ID:         "v-001-3",
					Version:    3,
					UploadedAt: date("2024-01-10"),
					UploadedBy: "Sarah Chen",
					Notes:      "Updated certificate with 2022 standard compliance",
					FileSize:   "2.4 MB",
					FileName:   "ISO27001_Certificate_2024.pdf",
				},
				{
					ID:         "v-001-2",
					Version:    2,
					UploadedAt: date("2023-01-15"),
					UploadedBy: "Michael Park",
					Notes:      "Annual renewal certificate",
					FileSize:   "2.1 MB",
					FileName:   "ISO27001_Certificate_2023.pdf",
				},
				{
					ID:         "v-001-1",
					Version:    1,
					UploadedAt: date("2022-01-20"),
					UploadedBy: "Sarah Chen",
					Notes:      "Initial certification",
					FileSize:   "1.9 MB",
					FileName:   "ISO27001_Certificate_2022.pdf",
				},
			},
		},
		{
			ID:          "ev-002",
			Name:        "SOC 2 Type II Report 2024",
			DocType:     "SOC 2 Type II Report",
			Status:      domain.EvidenceStatusApproved,
			ExpiryDate:  datePtr("2025-06-30"),
			LastUpdated: date("2024-07-01"),
			Description: "Service Organization Control report covering security, availability, and confidentiality.",
			Versions: []domain.EvidenceVersion{
				{
					ID:         "v-002-2",
					Version:    2,
					UploadedAt: date("2024-07-01"),
					UploadedBy: "James Wilson",
					Notes:      "Latest audit report with zero exceptions",
					FileSize:   "15.8 MB",
					FileName:   "SOC2_TypeII_2024.pdf",
				},
				{
					ID:         "v-002-1",
					Version:    1,
					UploadedAt: date("2023-07-15"),
					UploadedBy: "James Wilson",
					Notes:      "Previous year audit report",
					FileSize:   "14.2 MB",
					FileName:   "SOC2_TypeII_2023.pdf",
				},
			},
		},
		{
			ID:          "ev-003",
			Name:        "GDPR Data Processing Agreement",
			DocType:     "Data Processing Agreement",
			Status:      domain.EvidenceStatusPending,
			LastUpdated: date("2024-11-20"),
			Description: "Standard contractual clauses for GDPR compliance with data processors.",
			Versions: []domain.EvidenceVersion{
				{
					ID:         "v-003-1",
					Version:    1,
					UploadedAt: date("2024-11-20"),
					UploadedBy: "Emily Rodriguez",
					Notes:      "Submitted for legal review",
					FileSize:   "856 KB",
					FileName:   "DPA_Template_v1.pdf",
				},
			},
		},
		{
			ID:          "ev-004",
			Name:        "Annual Penetration Test Report",
			DocType:     "Penetration Test Report",
			Status:      domain.EvidenceStatusExpired,
			ExpiryDate:  datePtr("2024-03-01"),
			LastUpdated: date("2023-03-15"),
			Description: "Third-party security assessment and vulnerability testing results.",
			Versions: []domain.EvidenceVersion{
				{
					ID:         "v-004-1",
					Version:    1,
					UploadedAt: date("2023-03-15"),
					UploadedBy: "Alex Thompson",
					Notes:      "Q1 2023 penetration test by SecureAudit Inc.",
					FileSize:   "4.2 MB",
					FileName:   "PenTest_Report_Q1_2023.pdf",
				},
			},
		},
		{
			ID:          "ev-005",
			Name:        "Business Continuity Plan 2024",
			DocType:     "Business Continuity Plan",
			Status:      domain.EvidenceStatusApproved,
			ExpiryDate:  datePtr("2025-01-31"),
			LastUpdated: date("2024-02-01"),
			Description: "Comprehensive disaster recovery and business continuity procedures.",
			Versions: []domain.EvidenceVersion{
				{
					ID:         "v-005-2",
					Version:    2,
					UploadedAt: date("2024-02-01"),
					UploadedBy: "Sarah Chen",
					Notes:      "Updated with new DR site information",
					FileSize:   "3.7 MB",
					FileName:   "BCP_2024_v2.pdf",
				},
				{
					ID:         "v-005-1",
					Version:    1,
					UploadedAt: date("2023-02-10"),
					UploadedBy: "Michael Park",
					Notes:      "Initial BCP document",
					FileSize:   "3.2 MB",
					FileName:   "BCP_2023.pdf",
				},
			},
		},
		{
			ID:          "ev-006",
			Name:        "Cyber Liability Insurance",
			DocType:     "Insurance Certificate",
			Status:      domain.EvidenceStatusApproved,
			ExpiryDate:  datePtr("2025-08-15"),
			LastUpdated: date("2024-08-20"),
			Description: "$5M cyber liability coverage from Marsh Insurance.",
			Versions: []domain.EvidenceVersion{
				{
					ID:         "v-006-1",
					Version:    1,
					UploadedAt: date("2024-08-20"),
					UploadedBy: "Finance Team",
					Notes:      "Renewed policy with increased coverage",
					FileSize:   "1.2 MB",
					FileName:   "CyberInsurance_2024.pdf",
				},
			},
		},
		{
			ID:          "ev-007",
			Name:        "GDPR Compliance Statement",
			DocType:     "GDPR Compliance Statement",
			Status:      domain.EvidenceStatusDraft,
			LastUpdated: date("2024-12-01"),
			Description: "Self-attestation document for GDPR compliance.",
			Versions: []domain.EvidenceVersion{
				{
					ID:         "v-007-1",
					Version:    1,
					UploadedAt: date("2024-12-01"),
					UploadedBy: "Emily Rodriguez",
					Notes:      "Draft - pending internal review",
					FileSize:   "524 KB",
					FileName:   "GDPR_Statement_Draft.pdf",
				},
			},
		},
		{
			ID:          "ev-008",
			Name:        "Q3 2024 Financial Audit",
			DocType:     "Financial Audit Report",
			Status:      domain.EvidenceStatusApproved,
			ExpiryDate:  datePtr("2025-09-30"),
			LastUpdated: date("2024-10-15"),
			Description: "Quarterly financial audit conducted by Deloitte.",
			Versions: []domain.EvidenceVersion{
				{
					ID:         "v-008-1",
					Version:    1,
					UploadedAt: date("2024-10-15"),
					UploadedBy: "Finance Team",
					Notes:      "Clean audit opinion",
					FileSize:   "8.9 MB",
					FileName:   "FinancialAudit_Q3_2024.pdf",
				},
			},
		},
	}
}

// SeedRequests returns the demo buyer requests.
func SeedRequests() []domain.BuyerRequest {
	return []domain.BuyerRequest{
		{
			ID:        "req-001",
			DocType:   "SOC 2 Type II Report",
			DueDate:   date("2025-01-15"),
			Status:    domain.RequestStatusPending,
			BuyerName: "Acme Corporation",
			Notes:     "Required for vendor onboarding process",
		},
		{
			ID:            "req-002",
			DocType:       "ISO 27001 Certificate",
			DueDate:       date("2025-01-10"),
			Status:        domain.RequestStatusFulfilled,
			BuyerName:     "Acme Corporation",
			FulfilledWith: "ev-001",
		},
		{
			ID:        "req-003",
			DocType:   "Penetration Test Report",
			DueDate:   date("2024-12-20"),
			Status:    domain.RequestStatusOverdue,
			BuyerName: "TechStart Inc.",
			Notes:     "Annual security assessment requirement",
		},
		{
			ID:        "req-004",
			DocType:   "Business Continuity Plan",
			DueDate:   date("2025-02-01"),
			Status:    domain.RequestStatusPending,
			BuyerName: "Global Finance Ltd.",
		},
		{
			ID:        "req-005",
			DocType:   "Insurance Certificate",
			DueDate:   date("2025-01-25"),
			Status:    domain.RequestStatusPending,
			BuyerName: "TechStart Inc.",
			Notes:     "Minimum $3M coverage required",
		},
		{
			ID:        "req-006",
			DocType:   "Data Processing Agreement",
			DueDate:   date("2025-01-30"),
			Status:    domain.RequestStatusPending,
			BuyerName: "HealthCare Plus",
			Notes:     "HIPAA-compliant DPA required",
		},
	}
}

func date(s string) time.Time {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		panic("storage: bad seed date " + s)
	}
	return t
}

func datePtr(s string) *time.Time {
	t := date(s)
	return &t
}
