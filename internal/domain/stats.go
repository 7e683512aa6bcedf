package domain

// SeuilSet regroupe les trois seuils de classification fournis par requête.
// Immuable pendant la génération d'un rapport : les mêmes données
// historiques peuvent être re-tranchées sous d'autres seuils sans mutation.
type SeuilSet struct {
	Mata       int64 `json:"seuil_mata"`
	Mlc        int64 `json:"seuil_mlc"`
	MataPanier int64 `json:"seuil_mata_panier"`
}

// CoursesMata regroupe les compteurs de classification des commandes MATA.
type CoursesMata struct {
	Total          int `json:"total"`
	SupSeuil       int `json:"sup_seuil"`
	PanierInfSeuil int `json:"panier_inf_seuil"`
}

// CoursesMlc regroupe les compteurs de classification des commandes MLC.
type CoursesMlc struct {
	Total    int `json:"total"`
	SupSeuil int `json:"sup_seuil"`
}

// DepensesDetail porte le total des dépenses et les sous-totaux par catégorie.
type DepensesDetail struct {
	Total        int64            `json:"total"`
	ParCategorie map[string]int64 `json:"par_categorie"`
}

// LivreurSummary est le résumé financier d'un livreur pour la journée.
// Construit une fois par requête, jamais persisté.
type LivreurSummary struct {
	LivreurID    string         `json:"livreur_id"`
	LivreurNom   string         `json:"livreur_nom"`
	TotalCourses int            `json:"total_courses"`
	Revenus      int64          `json:"revenus"`
	Depenses     DepensesDetail `json:"depenses"`
	// Benefice = Revenus - Depenses.Total ; peut être négatif
	Benefice    int64       `json:"benefice"`
	CoursesMata CoursesMata `json:"courses_mata"`
	CoursesMlc  CoursesMlc  `json:"courses_mlc"`
}

// ClassementEntry est une ligne du classement des livreurs par bénéfice.
// Le rang est dense : deux bénéfices égaux partagent le même rang et le
// bénéfice distinct suivant reçoit rang+1.
type ClassementEntry struct {
	Rang       int    `json:"rang"`
	LivreurID  string `json:"livreur_id"`
	LivreurNom string `json:"livreur_nom"`
	Benefice   int64  `json:"benefice"`
}

// GlobalSummary porte les totaux globaux du rapport, calculés par sommation
// des lignes de détail, jamais recalculés depuis les lignes brutes.
type GlobalSummary struct {
	TotalCourses int         `json:"total_courses"`
	Revenus      int64       `json:"revenus"`
	Depenses     int64       `json:"depenses"`
	Benefice     int64       `json:"benefice"`
	CoursesMata  CoursesMata `json:"courses_mata"`
	CoursesMlc   CoursesMlc  `json:"courses_mlc"`
}

// DailyStatsReport est la réponse complète de l'endpoint livreurStats/daily.
// Les seuils et la date sont renvoyés tels quels pour que l'appelant puisse
// confirmer les paramètres qui ont produit les chiffres.
type DailyStatsReport struct {
	Date            string             `json:"date"`
	SeuilMata       int64              `json:"seuil_mata"`
	SeuilMlc        int64              `json:"seuil_mlc"`
	SeuilMataPanier int64              `json:"seuil_mata_panier"`
	Summary         GlobalSummary      `json:"summary"`
	Details         []*LivreurSummary  `json:"details"`
	Classement      []*ClassementEntry `json:"classement"`
}
