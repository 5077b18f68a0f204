package reportService

import (
	"mordomia/internal/api/report"
	"time"
)

// One stewardship verse per calendar month.
var scriptures = [12]report.Scripture{
	{Reference: "Provérbios 3:9", Text: "Honra ao Senhor com os teus bens e com as primícias de toda a tua renda."},
	{Reference: "Lucas 14:28", Text: "Pois qual de vós, querendo edificar uma torre, não se assenta primeiro a fazer as contas dos gastos, para ver se tem com que a acabar?"},
	{Reference: "Malaquias 3:10", Text: "Trazei todos os dízimos à casa do tesouro, para que haja mantimento na minha casa, e depois fazei prova de mim nisto, diz o Senhor dos Exércitos."},
	{Reference: "Provérbios 21:5", Text: "Os planos do diligente tendem à abundância, mas todo o apressado, à pobreza."},
	{Reference: "2 Coríntios 9:7", Text: "Cada um contribua segundo propôs no seu coração; não com tristeza, ou por necessidade; porque Deus ama ao que dá com alegria."},
	{Reference: "Lucas 16:10", Text: "Quem é fiel no mínimo, também é fiel no muito; quem é injusto no mínimo, também é injusto no muito."},
	{Reference: "Provérbios 22:7", Text: "O rico domina sobre os pobres, e o que toma emprestado é servo do que empresta."},
	{Reference: "Mateus 6:21", Text: "Porque onde estiver o vosso tesouro, aí estará também o vosso coração."},
	{Reference: "Provérbios 6:6-8", Text: "Vai ter com a formiga, ó preguiçoso; olha para os seus caminhos e sê sábio. No verão prepara o seu pão; na sega ajunta o seu mantimento."},
	{Reference: "Eclesiastes 5:10", Text: "Quem amar o dinheiro nunca se fartará de dinheiro; e quem amar a abundância nunca se fartará da renda."},
	{Reference: "1 Timóteo 6:10", Text: "Porque o amor ao dinheiro é a raiz de toda espécie de males."},
	{Reference: "Filipenses 4:19", Text: "O meu Deus, segundo as suas riquezas, suprirá todas as vossas necessidades em glória, por Cristo Jesus."},
}

func scriptureFor(monthStart time.Time) report.Scripture {
	return scriptures[int(monthStart.Month())-1]
}
