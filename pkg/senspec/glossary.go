package senspec

const glossary = `
   _________
  | TP | FP |
  |____|____|
  | FN | TN |
  |____|____|

true positive               TP
  syn: hit
true negative               TN
false positive              FP
  syn: type I error
false negative              FN
  syn: type II error
sensitivity                 TP / (TP + FN)
  syn: true positive rate (TPR), power, recall
specificity                 TN / N = TN / (FP + TN)
  syn: true negative rate (TNR)
type I error rate           FP / (FP + TN) = 1 - specificity
  syn: alpha, FPR
type II error rate          FN / (TP + FN) = 1 - sensitivity
  syn: beta, FNR
positive predictive value   TP / (TP + FP)
  syn: precision
negative predictive value   TN / (TN + FN)
false discovery rate (FDR)  FP / (FP + TP)
accuracy                    (TP + TN) / (TP + TN + FP + FN)

`

// Glossary returns the static definitions of every metric.
func Glossary() string {
	return glossary
}
