// Package fixtures holds the demo dataset used by `parceiro seed` and by
// tests across the module.
package fixtures

import (
	"github.com/Veraticus/parceiro/internal/model"
)

// Dataset is a complete set of records for one partner.
type Dataset struct {
	Profile     model.Profile
	Leads       []model.Lead
	Sales       []model.Sale
	Commissions []model.CommissionEntry
	Materials   []model.Material
	Activities  []model.Activity
}

// Demo returns a fresh copy of the demo dataset.
func Demo() Dataset {
	return Dataset{
		Profile:     Profile(),
		Leads:       Leads(),
		Sales:       Sales(),
		Commissions: Commissions(),
		Materials:   Materials(),
		Activities:  Activities(),
	}
}

// Profile returns the demo partner profile.
func Profile() model.Profile {
	return model.Profile{
		PartnerID: "GS123456",
		FullName:  "João Silva",
		Email:     "joao.silva@email.com",
		Phone:     "(11) 98765-4321",
		Payment: model.PaymentInfo{
			AccountType: model.AccountPixEmail,
			PixKey:      "joao.silva@email.com",
			HolderName:  "João Silva",
			HolderCPF:   "123.456.789-00",
		},
	}
}

// Leads returns the demo leads in display order.
func Leads() []model.Lead {
	return []model.Lead{
		{ID: 1, Name: "João da Silva", Company: "Barbearia Silva", ReferralDate: model.MustDate("2025-07-15"), Status: model.LeadQualified, NextStep: "Aguardando reunião com SDR"},
		{ID: 2, Name: "Maria Santos", Company: "Salão Beleza Total", ReferralDate: model.MustDate("2025-07-14"), Status: model.LeadScheduled, NextStep: "Reunião marcada para amanhã"},
		{ID: 3, Name: "Pedro Oliveira", Company: "Clínica Dent Care", ReferralDate: model.MustDate("2025-07-13"), Status: model.LeadNegotiating, NextStep: "Proposta enviada"},
		{ID: 4, Name: "Ana Costa", Company: "Estética & Cia", ReferralDate: model.MustDate("2025-07-12"), Status: model.LeadClosed, NextStep: "Contrato assinado"},
		{ID: 5, Name: "Carlos Mendes", Company: "Academia Força Total", ReferralDate: model.MustDate("2025-07-11"), Status: model.LeadLost, NextStep: "Não teve interesse"},
	}
}

// Sales returns the demo sales in display order.
func Sales() []model.Sale {
	return []model.Sale{
		{ID: 1, ClientName: "Ana Costa", Company: "Estética & Cia", ClosingDate: model.MustDate("2025-07-14"), SaleValue: model.MustMoney(1500), MonthlyFeeValue: model.MustMoney(200), ContractStatus: model.ContractActive},
		{ID: 2, ClientName: "João da Silva", Company: "Barbearia Silva", ClosingDate: model.MustDate("2025-07-10"), SaleValue: model.MustMoney(1200), MonthlyFeeValue: model.MustMoney(150), ContractStatus: model.ContractActive},
		{ID: 3, ClientName: "Maria Souza", Company: "Clínica Sorria Mais", ClosingDate: model.MustDate("2025-06-28"), SaleValue: model.MustMoney(2000), MonthlyFeeValue: model.MustMoney(300), ContractStatus: model.ContractCancelled},
	}
}

// Commissions returns the demo commission ledger in display order.
func Commissions() []model.CommissionEntry {
	return []model.CommissionEntry{
		{ID: 1, Date: model.MustDate("2025-07-15"), Type: model.CommissionQualifiedAppointment, ClientName: "João da Silva", Description: "Agendamento de João da Silva", Amount: model.MustMoney(50), PaymentStatus: model.PaymentPending},
		{ID: 2, Date: model.MustDate("2025-07-14"), Type: model.CommissionClosedSale, ClientName: "Ana Costa", Description: "Venda - Estética & Cia", Amount: model.MustMoney(200), PaymentStatus: model.PaymentPending},
		{ID: 3, Date: model.MustDate("2025-07-01"), Type: model.CommissionMonthlyRecurrence, ClientName: "Maria Souza", Description: "Mensalidade Jul/2025 - Clínica Sorria Mais", Amount: model.MustMoney(15), PaymentStatus: model.PaymentPaid},
		{ID: 4, Date: model.MustDate("2025-06-28"), Type: model.CommissionClosedSale, ClientName: "Maria Souza", Description: "Venda - Clínica Sorria Mais", Amount: model.MustMoney(300), PaymentStatus: model.PaymentPaid},
		{ID: 5, Date: model.MustDate("2025-06-20"), Type: model.CommissionQualifiedAppointment, ClientName: "Pedro Santos", Description: "Agendamento de Pedro Santos", Amount: model.MustMoney(50), PaymentStatus: model.PaymentCancelled},
	}
}

// Materials returns the support materials catalog.
func Materials() []model.Material {
	return []model.Material{
		{ID: 1, Title: "Apresentação SeuAgente.ai", Description: "PDF da apresentação oficial do SeuAgente.ai para clientes.", Kind: model.MaterialPDF},
		{ID: 2, Title: "Guia de Abordagem de Vendas", Description: "Manual completo com técnicas de vendas e scripts de abordagem.", Kind: model.MaterialPDF},
		{ID: 3, Title: "Casos de Sucesso - Barbearias", Description: "Exemplos reais de sucesso com clientes do segmento de barbearias.", Kind: model.MaterialPDF},
		{ID: 4, Title: "Vídeo Demonstrativo", Description: "Demonstração completa da plataforma SeuAgente.ai em funcionamento.", Kind: model.MaterialVideo, PreviewURL: "https://example.com/video"},
		{ID: 5, Title: "Kit de Imagens para Redes Sociais", Description: "Pacote com imagens otimizadas para Instagram, Facebook e LinkedIn.", Kind: model.MaterialZIP},
		{ID: 6, Title: "Scripts de WhatsApp", Description: "Modelos de mensagens para abordar prospects via WhatsApp.", Kind: model.MaterialPDF},
	}
}

// Activities returns the recent activity feed, newest first.
func Activities() []model.Activity {
	return []model.Activity{
		{Date: model.MustDate("2025-07-15"), Client: "João da Silva", Event: "Lead qualificou-se", Kind: model.ActivityLead},
		{Date: model.MustDate("2025-07-14"), Client: "Barbearia Cortes & Estilos", Event: "Venda fechada", Kind: model.ActivitySale},
		{Date: model.MustDate("2025-07-13"), Client: "Maria Santos", Event: "Lead qualificou-se", Kind: model.ActivityLead},
		{Date: model.MustDate("2025-07-12"), Client: "Salão Beleza Total", Event: "Agendamento marcado", Kind: model.ActivityAppointment},
		{Date: model.MustDate("2025-07-11"), Client: "Pedro Oliveira", Event: "Lead qualificou-se", Kind: model.ActivityLead},
	}
}
